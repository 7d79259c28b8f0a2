// Package obs is the ambient observability stack: a zerolog-based
// structured logger and a small set of Prometheus metrics instrumenting
// a run. Components take a *Logger (or the embedded zerolog.Logger)
// as an explicit field, never a package-level global.
package obs

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level mirrors the teacher's verbose/non-verbose split, resolved to a
// zerolog level rather than a hand-rolled enum.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config controls how NewLogger builds its output.
type Config struct {
	Level  Level
	Pretty bool // console-writer formatting, for TTY output
	Output io.Writer
}

// Logger wraps a zerolog.Logger so callers get the project's default
// field set (timestamp) without importing zerolog directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a Logger per cfg. A zero Config yields an info-level
// JSON logger on stdout.
func NewLogger(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zl := zerolog.New(out).With().Timestamp().Logger()
	zl = zl.Level(parseLevel(cfg.Level))
	return Logger{zl}
}

func parseLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
