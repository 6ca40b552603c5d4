// Package logger builds the zerolog logger used for diagnostics.
// Diagnostics go to stderr so stdout stays reserved for the report.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures the logger
type Options struct {
	Level  string    // trace, debug, info, warn, error
	Format string    // console or json
	Writer io.Writer // defaults to os.Stderr
}

// New builds a logger tagged with a fresh run_id
func New(opts Options) *zerolog.Logger {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if strings.ToLower(opts.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	l := zerolog.New(w).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(l *zerolog.Logger, component string) *zerolog.Logger {
	if component == "" {
		return l
	}
	child := l.With().Str("component", component).Logger()
	return &child
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to warn.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
