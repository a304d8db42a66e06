// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

// Status is the exit-status override requested with the 'x' option. It only
// ever moves forward: disabled -> armed-unmet -> armed-met.
type Status int

const (
	StatusDisabled Status = iota
	StatusArmedUnmet
	StatusArmedMet
)

func (s Status) String() string {
	switch s {
	case StatusArmedUnmet:
		return "armed, condition not met"
	case StatusArmedMet:
		return "armed, condition met"
	default:
		return "disabled"
	}
}

// Translate maps the tool's normal exit code through the override. Only the
// two normal codes (0 ok, 1 failure) are translated; anything else is
// reserved for fatal/usage errors and passes through unchanged, as does
// everything when the override was never armed.
func (s Status) Translate(code int) int {
	if code&^1 != 0 {
		return code
	}
	switch s {
	case StatusArmedMet:
		return 0
	case StatusArmedUnmet:
		return 1
	default:
		return code
	}
}
