// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantErr  bool
		wantCol  int // 0 means don't check
		expect   int64
		counting CountingMode
		location LocationMode
		report   ReportOptions
		status   Status
		mapMax   int
		mapFail  byte
		mapSucc  byte
	}{
		"plain count": {
			input:  "3",
			expect: 3,
		},
		"failure count": {
			input:    "-3",
			expect:   3,
			counting: CountFailure,
		},
		"multi digit count": {
			input:  "120",
			expect: 120,
		},
		"sequence mode": {
			input:    "3s",
			expect:   3,
			location: Sequence,
		},
		"sequence mode with exit status": {
			input:    "3s:x",
			expect:   3,
			location: Sequence,
			report:   ReportOptions{ExitStatus: true},
			status:   StatusArmedUnmet,
		},
		"failure sequence with exit status and both counts": {
			input:    "-5s:xN",
			expect:   5,
			counting: CountFailure,
			location: Sequence,
			report:   ReportOptions{ExitStatus: true, ShowSuccess: true, ShowFailures: true},
			status:   StatusArmedUnmet,
		},
		"count option defaults to complement when counting successes": {
			input:  "3:n",
			expect: 3,
			report: ReportOptions{ShowFailures: true},
		},
		"count option defaults to complement when counting failures": {
			input:    "-3:n",
			expect:   3,
			counting: CountFailure,
			report:   ReportOptions{ShowSuccess: true},
		},
		"count option forced to successes": {
			input:  "3:+n",
			expect: 3,
			report: ReportOptions{ShowSuccess: true},
		},
		"count option forced to failures": {
			input:    "-3:-n",
			expect:   3,
			counting: CountFailure,
			report:   ReportOptions{ShowFailures: true},
		},
		"both counts": {
			input:  "3:N",
			expect: 3,
			report: ReportOptions{ShowSuccess: true, ShowFailures: true},
		},
		"silent and state": {
			input:  "3:qc",
			expect: 3,
			report: ReportOptions{Silent: true, ShowState: true},
		},
		"map with defaults": {
			input:   "3:m",
			expect:  3,
			report:  ReportOptions{ShowMap: true},
			mapMax:  defaultMapSize,
			mapFail: defaultFailureGlyph,
			mapSucc: defaultSuccessGlyph,
		},
		"map with size": {
			input:   "3:m(5)",
			expect:  3,
			report:  ReportOptions{ShowMap: true},
			mapMax:  5,
			mapFail: defaultFailureGlyph,
			mapSucc: defaultSuccessGlyph,
		},
		"map with glyphs only": {
			input:   "3:m(:ab)",
			expect:  3,
			report:  ReportOptions{ShowMap: true},
			mapMax:  defaultMapSize,
			mapFail: 'a',
			mapSucc: 'b',
		},
		"map with size and glyphs": {
			input:   "10:m(200:.x)",
			expect:  10,
			report:  ReportOptions{ShowMap: true},
			mapMax:  200,
			mapFail: '.',
			mapSucc: 'x',
		},
		"all options": {
			input:   "7:xNmqc",
			expect:  7,
			report:  ReportOptions{ExitStatus: true, ShowSuccess: true, ShowFailures: true, ShowMap: true, Silent: true, ShowState: true},
			status:  StatusArmedUnmet,
			mapMax:  defaultMapSize,
			mapFail: defaultFailureGlyph,
			mapSucc: defaultSuccessGlyph,
		},
		"empty string":                           {input: "", wantErr: true},
		"zero count":                             {input: "0", wantErr: true},
		"zero failure count":                     {input: "-0", wantErr: true},
		"missing count":                          {input: "s", wantErr: true, wantCol: 1},
		"double minus":                           {input: "--3", wantErr: true, wantCol: 2},
		"garbage after count":                    {input: "3z", wantErr: true, wantCol: 2},
		"repeated location flag":                 {input: "3ss", wantErr: true, wantCol: 3},
		"unknown option":                         {input: "3:z", wantErr: true, wantCol: 3},
		"modifier on non-n option":               {input: "3:+x", wantErr: true},
		"dangling modifier":                      {input: "3:+", wantErr: true},
		"arguments on non-m option":              {input: "3:n(1)", wantErr: true},
		"unterminated parenthesis":               {input: "3:m(5:ab", wantErr: true},
		"empty map arguments":                    {input: "3:m()", wantErr: true},
		"zero map size":                          {input: "3:m(0)", wantErr: true},
		"zero map size with glyphs":              {input: "3:m(0:ab)", wantErr: true},
		"non digit map size":                     {input: "3:m(a)", wantErr: true},
		"too many glyphs":                        {input: "3:m(5:abc)", wantErr: true},
		"too few glyphs":                         {input: "3:m(5:a)", wantErr: true},
		"option without separating colon":        {input: "3x", wantErr: true, wantCol: 2},
		"sequence flag after options impossible": {input: "3:s", wantErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cond, err := Parse(test.input)

			if test.wantErr {
				require.Error(t, err)
				var pe *ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, test.input, pe.Input)
				assert.Greater(t, pe.Column, 0)
				if test.wantCol > 0 {
					assert.Equal(t, test.wantCol, pe.Column)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cond)
			assert.Equal(t, test.expect, cond.Expect)
			assert.Equal(t, test.counting, cond.Counting)
			assert.Equal(t, test.location, cond.Location)
			assert.Equal(t, test.report, cond.Report)
			assert.Equal(t, test.status, cond.Status())
			assert.False(t, cond.Met())

			if test.report.ShowMap {
				require.NotNil(t, cond.rmap)
				assert.Equal(t, test.mapMax, cond.rmap.maxSize)
				assert.Equal(t, test.mapFail, cond.rmap.failureGlyph)
				assert.Equal(t, test.mapSucc, cond.rmap.successGlyph)
				assert.Nil(t, cond.rmap.buf, "map buffer must not be allocated before the first record")
			} else {
				assert.Nil(t, cond.rmap)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := Parse("3z")

	require.Error(t, err)
	assert.Equal(t, "exit condition parsing error '3z'@2: expected ':', got 'z'", err.Error())
}
