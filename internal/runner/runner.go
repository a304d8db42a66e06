// SPDX-License-Identifier: GPL-3.0-or-later

// Package runner drives the probe loop: it sends probes at a fixed
// interval, feeds every completed probe to the exit condition and derives
// the final exit code.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/probeware/pingx/internal/exitcond"
	"github.com/probeware/pingx/internal/prober"
	"github.com/probeware/pingx/logger"
)

const (
	// normal exit codes, translatable by an armed exit condition
	ExitOK      = 0
	ExitNoReply = 1
	// reserved for usage and internal errors, never translated
	ExitError = 2
)

type Config struct {
	Host     string
	Count    int // 0 means no limit
	Interval time.Duration
	Deadline time.Duration // 0 means none
	Cond     *exitcond.Condition
}

func New(conf Config, p *prober.Prober, log *logger.Logger, out io.Writer) *Runner {
	return &Runner{
		Config: conf,
		Logger: log,
		out:    out,
		ping:   p.Ping,
	}
}

type Runner struct {
	Config
	*logger.Logger

	out  io.Writer
	ping func(ctx context.Context) (prober.Result, error)

	transmitted int64
	received    int64
}

// Run probes until the count is exhausted, the deadline or context expires
// or the exit condition is satisfied, then prints the summary and the
// condition report. The returned exit code is already translated through
// the condition's exit status.
func (r *Runner) Run(ctx context.Context) int {
	if r.Interval <= 0 {
		r.Interval = time.Second
	}
	if r.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Deadline)
		defer cancel()
	}

	start := time.Now()
	fmt.Fprintf(r.out, "PINGX %s\n", r.Host)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

loop:
	for seq := 1; ; seq++ {
		if err := r.probe(ctx, seq); err != nil {
			break // cancelled or deadline passed
		}

		if r.Cond != nil {
			met, err := r.Cond.Update(r.transmitted, r.received)
			if err != nil {
				// one-probe-per-call contract violated, counters are
				// no longer trustworthy
				r.Error(err)
				return ExitError
			}
			if r.Cond.Report.ShowMap && logger.Level.Enabled(slog.LevelDebug) {
				r.Debugf("outcome map:\n%s", r.Cond.DebugMap())
			}
			if met {
				r.Infof("exit condition satisfied after %d probe(s)", seq)
				break
			}
		}

		if r.Count > 0 && r.transmitted >= int64(r.Count) {
			break
		}

		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	r.printSummary(time.Since(start))

	code := ExitNoReply
	if r.received > 0 {
		code = ExitOK
	}
	if r.Cond != nil {
		if err := r.Cond.WriteReport(r.out); err != nil {
			r.Warningf("writing condition report: %v", err)
		}
		code = r.Cond.Status().Translate(code)
	}

	return code
}

// probe sends one echo request and updates the cumulative totals. Probe
// errors other than cancellation count as failed probes so the condition
// still sees them.
func (r *Runner) probe(ctx context.Context, seq int) error {
	res, err := r.ping(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.Warningf("probe %d: %v", seq, err)
		r.transmitted++
		return nil
	}

	r.transmitted++
	if res.Received {
		r.received++
		fmt.Fprintf(r.out, "reply from %s (%s): seq=%d time=%s\n", res.Host, res.IP, seq, res.RTT)
	} else {
		fmt.Fprintf(r.out, "no reply from %s: seq=%d\n", res.Host, seq)
	}

	return nil
}

func (r *Runner) printSummary(elapsed time.Duration) {
	loss := 0.0
	if r.transmitted > 0 {
		loss = float64(r.transmitted-r.received) / float64(r.transmitted) * 100
	}
	fmt.Fprintf(r.out, "--- %s ping statistics ---\n", r.Host)
	fmt.Fprintf(r.out, "%d packets transmitted, %d received, %.0f%% packet loss, time %s\n",
		r.transmitted, r.received, loss, elapsed.Round(time.Millisecond))
}
