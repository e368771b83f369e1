package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/areatab/areatab/pkg/logging"
)

// NewLogger builds the application logger. The level comes from, in
// order: --log-level, -v or -q, the LOG_LEVEL environment variable,
// and finally the info default.
func NewLogger(config *Config) zerolog.Logger {
	level := resolveLevel(config)
	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// resolveLevel walks the level precedence chain. Bad level names fall
// back to info with a warning on stderr instead of failing the whole
// command over a logging knob.
func resolveLevel(config *Config) string {
	if config.LogLevel != "" {
		return checkedLevel(config.LogLevel, "--log-level")
	}

	switch {
	case config.Verbose && config.Quiet:
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet set, keeping --quiet")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	}

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return checkedLevel(env, "LOG_LEVEL")
	}
	return "info"
}

// checkedLevel returns level when it names a known level, info
// otherwise, saying where the bad name came from.
func checkedLevel(level, source string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	fmt.Fprintf(os.Stderr, "Warning: %s %q is not a log level, using \"info\"\n", source, level)
	return "info"
}
