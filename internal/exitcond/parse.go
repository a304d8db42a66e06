// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

import (
	"fmt"
	"strings"
)

// optionLetters are the recognized single-letter report/behavior options.
const optionLetters = "xnNmqc"

// ParseError describes a syntax error in an exit-condition string.
type ParseError struct {
	Input  string
	Column int // 1-based
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("exit condition parsing error '%s'@%d: %s", e.Input, e.Column, e.Reason)
}

func parseErrorf(input string, pos int, format string, a ...any) *ParseError {
	return &ParseError{Input: input, Column: pos + 1, Reason: fmt.Sprintf(format, a...)}
}

type parsePhase int

const (
	phaseCount parsePhase = iota
	phaseLocation
	phaseOptions
)

// Parse builds a Condition from exit-condition text of the form
// <count><loc>[:<opt>+], e.g. "3", "-5s:xN" or "10:m(200:.x)".
func Parse(text string) (*Condition, error) {
	cond := &Condition{}
	phase := phaseCount

	for pos := 0; pos < len(text); pos++ {
		c := text[pos]
		switch phase {
		case phaseCount:
			if pos == 0 && c == '-' {
				cond.Counting = CountFailure
				continue
			}
			if isDigit(c) {
				cond.Expect = cond.Expect*10 + int64(c-'0')
				continue
			}
			if pos == 0 {
				return nil, parseErrorf(text, pos, "unexpected character '%c' at start", c)
			}
			phase = phaseLocation
			fallthrough
		case phaseLocation:
			if c == ':' {
				phase = phaseOptions
				continue
			}
			if c == 's' {
				if cond.Location == Sequence {
					return nil, parseErrorf(text, pos, "repeated location flag '%c'", c)
				}
				cond.Location = Sequence
				continue
			}
			return nil, parseErrorf(text, pos, "expected ':', got '%c'", c)
		case phaseOptions:
			var err error
			if pos, err = parseOption(cond, text, pos); err != nil {
				return nil, err
			}
		}
	}

	if cond.Expect < 1 {
		return nil, parseErrorf(text, 0, "expected count must be greater than zero")
	}

	return cond, nil
}

// parseOption consumes one option starting at pos, returning the position of
// its last character.
func parseOption(cond *Condition, text string, pos int) (int, error) {
	opt := text[pos]
	var modifier byte

	if opt == '-' || opt == '+' {
		modifier = opt
		pos++
		if pos == len(text) {
			return 0, parseErrorf(text, pos, "unexpected end of option string")
		}
		opt = text[pos]
	}
	if strings.IndexByte(optionLetters, opt) == -1 {
		return 0, parseErrorf(text, pos, "invalid option '%c'", opt)
	}
	if modifier != 0 && opt != 'n' {
		return 0, parseErrorf(text, pos, "'+'/'-' modifiers are only allowed for the 'n' option")
	}

	// parenthesized argument list
	argStart, argEnd := 0, 0 // 0 marks absence, '(' can never be at 0
	if pos+1 < len(text) && text[pos+1] == '(' {
		pos++
		argStart = pos + 1
		for {
			pos++
			if pos == len(text) {
				return 0, parseErrorf(text, pos, "unexpected end of string looking for ')'")
			}
			if text[pos] == ')' {
				break
			}
		}
		argEnd = pos
	}
	if argStart > 0 && opt != 'm' {
		return 0, parseErrorf(text, argStart, "option '%c' does not accept arguments", opt)
	}

	switch opt {
	case 'x':
		cond.Report.ExitStatus = true
		cond.status = StatusArmedUnmet
	case 'n':
		if modifier == 0 {
			// default to the complement of the counting mode
			if cond.Counting == CountFailure {
				modifier = '+'
			} else {
				modifier = '-'
			}
		}
		if modifier == '+' {
			cond.Report.ShowSuccess = true
		} else {
			cond.Report.ShowFailures = true
		}
	case 'N':
		cond.Report.ShowSuccess = true
		cond.Report.ShowFailures = true
	case 'm':
		cond.Report.ShowMap = true
		cond.rmap = newRingMap()
		if argStart > 0 {
			if err := parseMapArgs(cond.rmap, text, argStart, argEnd); err != nil {
				return 0, err
			}
		}
	case 'q':
		cond.Report.Silent = true
	case 'c':
		cond.Report.ShowState = true
	}

	return pos, nil
}

// parseMapArgs handles the m(<size>[:<fc><sc>]) argument section located at
// text[start:end]: an optional decimal map size, then optionally ':' and
// exactly two glyph overrides, failure glyph first.
func parseMapArgs(m *ringMap, text string, start, end int) error {
	if start == end {
		return parseErrorf(text, start, "'m' argument list must not be empty")
	}

	sizeEnd := end
	if i := strings.IndexByte(text[start:end], ':'); i != -1 {
		sizeEnd = start + i
		if end-sizeEnd-1 != 2 {
			return parseErrorf(text, sizeEnd, "expected exactly 2 characters after ':' in 'm' arguments")
		}
		m.failureGlyph = text[sizeEnd+1]
		m.successGlyph = text[sizeEnd+2]
	}

	var size int64
	for pos := start; pos < sizeEnd; pos++ {
		c := text[pos]
		if !isDigit(c) {
			return parseErrorf(text, pos, "invalid character '%c' in 'm' arguments, expected digit or ':'", c)
		}
		size = size*10 + int64(c-'0')
	}
	if sizeEnd > start {
		if size < 1 {
			return parseErrorf(text, start, "'m' map size must be greater than zero")
		}
		m.maxSize = int(size)
	}

	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
