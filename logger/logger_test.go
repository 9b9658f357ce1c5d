package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesComponentField(t *testing.T) {
	var buf bytes.Buffer
	root, closer, err := Setup(Options{Level: "debug", Out: &buf})
	require.NoError(t, err)
	defer closer.Close()

	l := New(root, "collector")
	l.Debug().Str("endpoint", "energy-mix").Msg("fetch")
	out := buf.String()
	assert.Contains(t, out, `"component":"collector"`)
	assert.Contains(t, out, `"endpoint":"energy-mix"`)
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	root, _, err := Setup(Options{Level: "warn", Out: &buf})
	require.NoError(t, err)
	root.Info().Msg("hidden")
	root.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gridmix.log")
	root, closer, err := Setup(Options{File: path})
	require.NoError(t, err)
	root.Info().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestDefaultFileHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/cache")
	assert.Equal(t, "/tmp/cache/gridmix/gridmix.log", DefaultFile())
}
