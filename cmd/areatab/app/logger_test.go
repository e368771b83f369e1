package app

import "testing"

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		env    string
		want   string
	}{
		{name: "nothing set defaults to info", want: "info"},
		{name: "verbose means debug", config: Config{Verbose: true}, want: "debug"},
		{name: "quiet means warn", config: Config{Quiet: true}, want: "warn"},
		{name: "quiet beats verbose", config: Config{Verbose: true, Quiet: true}, want: "warn"},
		{name: "explicit level wins over flags", config: Config{LogLevel: "error", Verbose: true, Quiet: true}, want: "error"},
		{name: "trace is accepted", config: Config{LogLevel: "trace"}, want: "trace"},
		{name: "unknown level falls back to info", config: Config{LogLevel: "shouting"}, want: "info"},
		{name: "level names are lowercase", config: Config{LogLevel: "DEBUG"}, want: "info"},
		{name: "environment fills the gap", env: "error", want: "error"},
		{name: "verbose beats environment", config: Config{Verbose: true}, env: "error", want: "debug"},
		{name: "unknown environment level falls back", env: "shouting", want: "info"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.env)

			if got := resolveLevel(&tc.config); got != tc.want {
				t.Errorf("resolveLevel() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewLoggerBuilds(t *testing.T) {
	configs := map[string]*Config{
		"defaults":       {LogFormat: "auto", LogOutput: "stderr"},
		"verbose":        {LogFormat: "auto", LogOutput: "stderr", Verbose: true},
		"quiet":          {LogFormat: "auto", LogOutput: "stderr", Quiet: true},
		"trace":          {LogLevel: "trace", LogFormat: "auto", LogOutput: "stderr"},
		"json to stdout": {LogLevel: "info", LogFormat: "json", LogOutput: "stdout"},
	}

	for name, config := range configs {
		t.Run(name, func(t *testing.T) {
			_ = NewLogger(config)
		})
	}
}
