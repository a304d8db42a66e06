// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

import (
	"io"
	"strconv"
	"strings"
)

const reportLabel = "exit condition: "

// WriteReport writes the final one-line report to w: the requested fields
// (state, success count, failure count, map) separated by '/', preceded by a
// label unless silent mode was requested. Nothing is written when no report
// field was requested.
func (c *Condition) WriteReport(w io.Writer) error {
	if !c.Report.any() {
		return nil
	}

	var b strings.Builder
	if !c.Report.Silent {
		b.WriteString(reportLabel)
	}

	wrote := false
	field := func(s string) {
		if wrote {
			b.WriteByte('/')
		}
		wrote = true
		b.WriteString(s)
	}

	if c.Report.ShowState {
		if c.met {
			field("T")
		} else {
			field("F")
		}
	}
	if c.Report.ShowSuccess {
		field(strconv.FormatInt(c.Successes(), 10))
	}
	if c.Report.ShowFailures {
		field(strconv.FormatInt(c.Failures(), 10))
	}
	if c.Report.ShowMap {
		field(c.rmap.render())
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
