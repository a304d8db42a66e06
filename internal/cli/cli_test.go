// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	opt, err := Parse([]string{"pingx", "-c", "3", "-x", "2:xN", "-i", "200ms", "example.com"})

	require.NoError(t, err)
	assert.Equal(t, 3, opt.Count)
	assert.Equal(t, "2:xN", opt.ExitCond)
	assert.Equal(t, time.Millisecond*200, opt.Interval)
	assert.Equal(t, time.Second*4, opt.Timeout)
	assert.Equal(t, "example.com", opt.Host)
}

func TestParse_NoHost(t *testing.T) {
	opt, err := Parse([]string{"pingx"})

	require.NoError(t, err)
	assert.Equal(t, "", opt.Host)
	assert.Equal(t, time.Second, opt.Interval)
}
