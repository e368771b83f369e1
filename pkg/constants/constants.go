// Package constants centralizes the fixed values shared between the
// areatab engine and its CLI so the two never drift apart.
package constants

import "time"

// Operational timing.
const (
	// DefaultTimeout bounds short housekeeping work such as the
	// shutdown grace period after a failed command.
	DefaultTimeout = 10 * time.Second

	// DefaultImportInterval is the cadence of automatic sheet imports
	// when the caller does not choose one.
	DefaultImportInterval = 1 * time.Hour
)

// Unix permission bits for everything areatab creates on disk.
const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Structural bounds on identifiers and sheet grids. Input beyond
// these is rejected as corrupt rather than processed.
const (
	MaxHandleLength       = 64
	MaxCategoryNameLength = 256

	// MaxGridColumns and MaxGridRows are the sheet dimensions desktop
	// spreadsheet applications enforce.
	MaxGridColumns = 16384
	MaxGridRows    = 1048576
)

// DefaultSnapshotPath is where the working record set lives unless a
// snapshot path is configured.
const DefaultSnapshotPath = "~/.areatab/records.yaml"
