// SPDX-License-Identifier: GPL-3.0-or-later

package exitcond

import "strings"

const (
	defaultMapSize    = 100
	maxInitialMapSize = 512
	mapGrowthStep     = 512

	defaultSuccessGlyph = '+'
	defaultFailureGlyph = '-'
)

// ringMap is a lazily allocated, growable ring of one-character probe
// outcomes. It grows in fixed steps until maxSize, then wraps around and
// overwrites the oldest entries.
type ringMap struct {
	successGlyph byte
	failureGlyph byte

	maxSize int
	buf     []byte // len(buf) is the current capacity, nil until first record
	pos     int    // next write index, 0 <= pos <= len(buf)
	wrapped bool   // pos has been reset to the start at least once
}

func newRingMap() *ringMap {
	return &ringMap{
		successGlyph: defaultSuccessGlyph,
		failureGlyph: defaultFailureGlyph,
		maxSize:      defaultMapSize,
	}
}

func (m *ringMap) extend() {
	if m.buf == nil {
		size := m.maxSize
		if size > maxInitialMapSize {
			size = maxInitialMapSize
		}
		m.buf = make([]byte, size)
		return
	}
	if len(m.buf) >= m.maxSize {
		return
	}
	size := len(m.buf) + mapGrowthStep
	if size > m.maxSize {
		size = m.maxSize
	}
	next := make([]byte, size)
	copy(next, m.buf)
	m.buf = next
}

func (m *ringMap) record(success bool) {
	glyph := m.failureGlyph
	if success {
		glyph = m.successGlyph
	}

	if m.buf == nil || m.pos == len(m.buf) {
		m.extend()
		if m.pos == len(m.buf) {
			m.pos = 0
			m.wrapped = true
		}
	}

	m.buf[m.pos] = glyph
	m.pos++
}

// render returns the recorded outcomes oldest to newest without touching
// stored state: the full capacity once wrapped, everything written so far
// otherwise.
func (m *ringMap) render() string {
	if m.buf == nil {
		return ""
	}
	if !m.wrapped {
		return string(m.buf[:m.pos])
	}

	var b strings.Builder
	b.Grow(len(m.buf))
	b.Write(m.buf[m.pos:])
	b.Write(m.buf[:m.pos])
	return b.String()
}

func (m *ringMap) renderDebug() string {
	return m.render() + "\n" + strings.Repeat(" ", m.pos) + "^"
}
