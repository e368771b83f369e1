// Package app wires the areatab CLI together. Configuration, logging,
// and the shared client live on the App value; command packages reach
// them through the Application interface instead of globals.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/areatab/areatab"
	"github.com/areatab/areatab/internal/cmd/cmdutil"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/records"
)

// App carries everything a running command needs: build metadata,
// the loaded Config, the logger, and the lazily created client.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config

	logger *zerolog.Logger

	// client is created on first use and shared afterwards.
	mu     sync.RWMutex
	client areatab.Client
}

// New builds an App for the given build metadata, loading configuration
// from the standard sources. Options override what loading produced.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the release version baked in at build time.
func (a *App) Version() string {
	return a.version
}

// Commit returns the build commit.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy reports which build system produced the binary.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the active configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the app logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// Client returns the areatab client. Called without options it returns
// the shared instance, creating it lazily from the app configuration.
// Called with options it creates a fresh instance that is not cached,
// built from the app configuration plus the given options, for
// commands that need a variation of the default (e.g. a dry-run
// import).
func (a *App) Client(opts ...areatab.Option) (areatab.Client, error) {
	if len(opts) > 0 {
		c, err := areatab.New(append(a.buildClientOptions(), opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "client", "with custom options", err)
		}
		return c, nil
	}

	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Another goroutine may have won the race for the write lock.
	if a.client != nil {
		return a.client, nil
	}

	c, err := areatab.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Tables returns a copy of the current working set from the shared
// client instance. This is a convenience method that handles client
// initialization and record retrieval in one call.
func (a *App) Tables() (*records.Set, error) {
	c, err := a.Client()
	if err != nil {
		return nil, err
	}
	return c.Tables(), nil
}

// Shutdown stops background work before the process exits; today that
// is the auto-import loop, when one is running.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		if err := c.AutoImportsOff(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to stop auto-imports during shutdown")
		}
	}

	return nil
}

// buildClientOptions translates the configuration into client options.
// Absent settings stay absent so the client's own defaults apply.
func (a *App) buildClientOptions() []areatab.Option {
	var opts []areatab.Option

	if a.config.SnapshotPath != "" {
		opts = append(opts, areatab.WithSnapshotPath(expandPath(a.config.SnapshotPath)))
	}
	if a.config.SchemaFile != "" {
		opts = append(opts, areatab.WithSchemaFile(expandPath(a.config.SchemaFile)))
	}
	if d, err := cmdutil.ParseDelimiter(a.config.Delimiter); err == nil {
		opts = append(opts, areatab.WithDelimiter(d))
	}

	if a.config.AutoImportsEnabled && a.config.SheetPath != "" {
		opts = append(opts,
			areatab.WithAutoImports(true),
			areatab.WithAutoImportPath(expandPath(a.config.SheetPath)),
		)
		if a.config.AutoImportInterval > 0 {
			opts = append(opts, areatab.WithAutoImportInterval(a.config.AutoImportInterval))
		}
	}

	return opts
}

// Option adjusts an App during New, after configuration loading.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger replaces the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient seeds the shared client, keeping tests off the real one.
func WithClient(c areatab.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
