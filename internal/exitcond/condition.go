// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcond implements the -x exit-condition mini-language: parsing
// the condition text, evaluating it incrementally after every probe,
// keeping a rolling map of outcomes and producing the final report and
// process exit status.
package exitcond

// CountingMode selects which probe outcome the expected count targets.
type CountingMode int

const (
	CountSuccess CountingMode = iota
	CountFailure
)

func (m CountingMode) String() string {
	if m == CountFailure {
		return "failure"
	}
	return "success"
}

// LocationMode selects whether the expected count must occur consecutively.
type LocationMode int

const (
	Cumulative LocationMode = iota
	Sequence
)

func (m LocationMode) String() string {
	if m == Sequence {
		return "sequence"
	}
	return "cumulative"
}

// ReportOptions holds the per-field report requests parsed from the
// condition options.
type ReportOptions struct {
	ExitStatus   bool // x
	ShowSuccess  bool // n+ or N
	ShowFailures bool // n- or N
	ShowMap      bool // m
	ShowState    bool // c
	Silent       bool // q
}

func (r ReportOptions) any() bool {
	return r.ShowState || r.ShowSuccess || r.ShowFailures || r.ShowMap
}

// Condition is a parsed exit condition plus the runtime state the
// evaluator advances once per completed probe. Build it with Parse.
type Condition struct {
	Expect   int64
	Counting CountingMode
	Location LocationMode
	Report   ReportOptions

	status Status

	// totals as of the last Update call
	lastTransmitted int64
	lastReceived    int64

	streak int64 // sequence mode only
	met    bool  // monotonic, never reset

	rmap *ringMap // non-nil iff Report.ShowMap
}

// Met reports whether the condition has ever been satisfied.
func (c *Condition) Met() bool { return c.met }

// Status returns the exit-status override state.
func (c *Condition) Status() Status { return c.status }

// Successes returns the total successful probes seen so far.
func (c *Condition) Successes() int64 { return c.lastReceived }

// Failures returns the total failed probes seen so far.
func (c *Condition) Failures() int64 { return c.lastTransmitted - c.lastReceived }

// DebugMap returns the rolling map with a caret line marking the current
// write position. Empty when map reporting was not requested.
func (c *Condition) DebugMap() string {
	if c.rmap == nil {
		return ""
	}
	return c.rmap.renderDebug()
}
