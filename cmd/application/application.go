// Package application defines the interface commands program against.
//
// Commands accept this interface instead of the concrete App type from
// cmd/areatab/app, so a test can hand them a Mock scripted with exactly
// the behavior it wants to probe. The App struct satisfies it without
// any adapter.
package application

import (
	"github.com/rs/zerolog"

	"github.com/areatab/areatab"
	"github.com/areatab/areatab/pkg/records"
)

// Application is what a command needs from the surrounding process.
// Implementations must be safe for concurrent use.
type Application interface {
	// Tables returns a deep copy of the default client's working set.
	// The copy keeps commands from racing the client's own runs.
	Tables() (*records.Set, error)

	// Client returns the areatab client. Without options it is the
	// cached default instance; with options a fresh one is built and
	// not cached.
	Client(opts ...areatab.Option) (areatab.Client, error)

	// Logger returns the process logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format name.
	OutputFormat() string

	// Version, Commit, Date, and BuiltBy expose the build metadata
	// stamped into the binary.
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
