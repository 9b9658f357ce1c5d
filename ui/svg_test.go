package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, threeDays().Days[0], ""))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, `viewBox="0 0 350 350"`)
	assert.Contains(t, out, "<title>6 Jan 2026 - 65.0% Clean Energy</title>")
	assert.Equal(t, 5, strings.Count(out, `class="chart-segment"`))
	assert.Equal(t, 1, strings.Count(out, `class="clean-arc"`))
	assert.Contains(t, out, `data-source="solar"`)
	assert.Contains(t, out, `stroke="#FFC90E" stroke-width="50"`)
	// solar is the first segment: 30% of 2π·80 starting at 12 o'clock
	assert.Contains(t, out, `stroke-dasharray="150.796 351.858" transform="rotate(-90.000 175 175)"`)
	assert.Contains(t, out, "✿</text>")
}

func TestWriteSVGHover(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, threeDays().Days[0], "wind"))
	assert.Contains(t, buf.String(), `data-source="wind" cx="175" cy="175" r="80" fill="none" stroke="#77a2f8" stroke-width="65"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGPropagatesWriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, threeDays().Days[0], "")
	assert.EqualError(t, err, "disk full")
}
