// Package logging wraps zerolog for the areatab engine. It keeps one
// process-wide default logger, reconfigurable from a Config or from
// LOG_* environment variables, and adds context plumbing so the run ID
// and record handle travel with a context.Context through an import.
//
// Typical use:
//
//	logging.Info().Str("handle", "K-101").Msg("record reconciled")
//
//	ctx := logging.WithRunID(ctx, runID)
//	logging.Ctx(ctx).Debug().Int("row", 12).Msg("row parsed")
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// defaultLogger backs the package-level event functions. Commands swap
// it out via SetDefault once flags and config are known; until then it
// follows the environment.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

// New creates a JSON logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.GlobalLevel()).With().Timestamp().Logger()
}

// NewConsole creates a human-readable logger on stderr.
func NewConsole() zerolog.Logger {
	return New(consoleWriter(os.Stderr, DefaultConfig()))
}

// NewJSON creates a JSON logger writing to w, or stderr when w is nil.
func NewJSON(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return New(w)
}

// With opens a child context on the default logger for attaching fields.
func With() zerolog.Context {
	return defaultLogger.With()
}

// Level returns a copy of the default logger restricted to the given level.
func Level(level zerolog.Level) zerolog.Logger {
	return defaultLogger.Level(level)
}

// Debug starts a debug event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warning event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

// Fatal starts a fatal event on the default logger; Msg exits the process.
func Fatal() *zerolog.Event { return defaultLogger.Fatal() }

// WithLevel starts an event at a dynamically chosen level.
func WithLevel(level zerolog.Level) *zerolog.Event {
	return defaultLogger.WithLevel(level)
}

// Err starts an error-or-info event carrying err, following zerolog's
// convention of logging nil errors at info.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}
