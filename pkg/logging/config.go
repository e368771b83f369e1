package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/areatab/areatab/pkg/constants"
)

// Config describes one logger setup.
type Config struct {
	// Level is the minimum level that gets written.
	Level string

	// Format selects json or console rendering. "auto" picks console
	// on terminals and json everywhere else.
	Format string

	// Output names the sink: stderr, stdout, discard, or a file path.
	Output string

	// TimeFormat renders console timestamps (kitchen, rfc3339, ...).
	TimeFormat string

	// NoColor strips ANSI colors from console output.
	NoColor bool

	// AddCaller annotates events with file:line.
	AddCaller bool

	// Fields is attached to every event.
	Fields map[string]any
}

// DefaultConfig is the setup used before any explicit configuration:
// info level on stderr, console rendering on terminals.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
		NoColor:    os.Getenv("NO_COLOR") != "",
		Fields:     make(map[string]any),
	}
}

// NewLoggerFromConfig builds a logger from cfg. The global zerolog
// level follows cfg so the package-level event functions filter the
// same way the returned logger does.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	out := sink(cfg.Output)
	if renderConsole(cfg.Format, out) {
		out = consoleWriter(out, cfg)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	if len(cfg.Fields) > 0 {
		logger = logger.With().Fields(cfg.Fields).Logger()
	}
	return logger
}

// Configure rebuilds the default logger from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigureFromEnv rebuilds the default logger from the environment.
func ConfigureFromEnv() {
	Configure(envConfig())
}

// envConfig reads LOG_LEVEL, LOG_FORMAT, LOG_OUTPUT, LOG_TIME_FORMAT,
// LOG_CALLER, LOG_FIELDS (comma-separated key=value pairs), and the
// DEBUG shortcut on top of the defaults.
func envConfig() *Config {
	cfg := DefaultConfig()
	cfg.Level = getEnvOrDefault("LOG_LEVEL", cfg.Level)
	if os.Getenv("LOG_LEVEL") == "" && os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	cfg.Format = getEnvOrDefault("LOG_FORMAT", cfg.Format)
	cfg.Output = getEnvOrDefault("LOG_OUTPUT", cfg.Output)
	cfg.TimeFormat = getEnvOrDefault("LOG_TIME_FORMAT", cfg.TimeFormat)
	cfg.AddCaller = os.Getenv("LOG_CALLER") == "true"
	cfg.Fields = parseFields(os.Getenv("LOG_FIELDS"))
	return cfg
}

// sink resolves an output name to a writer. Unknown names are treated
// as file paths; a path that cannot be opened falls back to stderr so
// a bad logging config never takes the program down.
func sink(output string) io.Writer {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

// renderConsole decides between console and json rendering. Explicit
// formats win; auto means console exactly when the sink is a terminal.
func renderConsole(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case "console", "pretty":
		return true
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
	return false
}

// consoleWriter wraps out in zerolog's console renderer.
func consoleWriter(out io.Writer, cfg *Config) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

var levelNames = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
	"none":     zerolog.Disabled,
	"off":      zerolog.Disabled,
}

// parseLevel maps a level name to its zerolog level, defaulting to
// info for the empty string and anything unrecognized.
func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	if l, ok := levelNames[strings.ToLower(level)]; ok {
		return l
	}
	if l, err := zerolog.ParseLevel(level); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

var timeFormats = map[string]string{
	"kitchen":     time.Kitchen,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"unix":        "",
	"epoch":       "",
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
}

// timeFormat resolves a timestamp format name, passing through custom
// reference layouts. The empty string means Unix timestamps.
func timeFormat(name string) string {
	if f, ok := timeFormats[strings.ToLower(name)]; ok {
		return f
	}
	if strings.Contains(name, "2006") || strings.Contains(name, "15:04") {
		return name
	}
	return time.Kitchen
}

// parseFields parses "key=value,key=value" into a field map.
func parseFields(spec string) map[string]any {
	fields := make(map[string]any)
	for _, pair := range strings.Split(spec, ",") {
		if key, value, ok := strings.Cut(pair, "="); ok {
			fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	return fields
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
