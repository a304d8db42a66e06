// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/probeware/pingx/internal/cli"
	"github.com/probeware/pingx/internal/exitcond"
	"github.com/probeware/pingx/internal/prober"
	"github.com/probeware/pingx/internal/runner"
	"github.com/probeware/pingx/logger"
	"github.com/probeware/pingx/pkg/buildinfo"
)

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("pingx, version: %s\n", buildinfo.Version)
		return
	}

	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	log := logger.New().With(slog.String("component", "pingx"))

	if opts.Host == "" {
		log.Error("no destination host given")
		os.Exit(runner.ExitError)
	}

	var cond *exitcond.Condition
	if opts.ExitCond != "" {
		var err error
		if cond, err = exitcond.Parse(opts.ExitCond); err != nil {
			log.Error(err)
			os.Exit(runner.ExitError)
		}
	}

	network := "ip"
	switch {
	case opts.IPv4:
		network = "ip4"
	case opts.IPv6:
		network = "ip6"
	}

	pr := prober.New(opts.Host, prober.Config{
		Network:    network,
		Privileged: opts.Privileged,
		Interface:  opts.Interface,
		Timeout:    opts.Timeout,
	}, log)

	r := runner.New(runner.Config{
		Host:     opts.Host,
		Count:    opts.Count,
		Interval: opts.Interval,
		Deadline: opts.Deadline,
		Cond:     cond,
	}, pr, log, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(r.Run(ctx))
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(runner.ExitError)
	}

	return opt
}
