package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects where and how verbosely to log.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...).
	Level string
	// File receives JSON lines when set. The dashboard owns the terminal, so
	// it always logs to a file.
	File string
	// Console writes human-readable lines to Out instead of JSON.
	Console bool
	Out     io.Writer
}

// Setup builds the root logger. The returned closer releases the log file.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var out io.Writer = os.Stderr
	if opts.Out != nil {
		out = opts.Out
	}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	} else if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

// New returns a child logger tagged with component.
func New(root zerolog.Logger, component string) zerolog.Logger {
	return root.With().Str("component", component).Logger()
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// DefaultFile returns $XDG_CACHE_HOME/gridmix/gridmix.log, or "" when no
// home directory can be determined.
func DefaultFile() string {
	dir := os.Getenv("XDG_CACHE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".cache")
	}
	return filepath.Join(dir, "gridmix", "gridmix.log")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
