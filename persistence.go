package areatab

import (
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/logging"
	"github.com/areatab/areatab/pkg/records"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles record set snapshot operations.
type Persistence interface {
	// Save writes the record set to the configured snapshot path
	Save() error

	// SaveTo writes the record set to a snapshot file
	SaveTo(path string) error
}

// Save writes the record set to the configured snapshot path.
func (c *client) Save() error {
	if c.options.snapshotPath == "" {
		return &errors.ConfigError{
			Component: "client",
			Message:   "no snapshot path configured",
		}
	}
	return c.SaveTo(c.options.snapshotPath)
}

// SaveTo writes the record set to a snapshot file.
func (c *client) SaveTo(path string) error {
	c.mu.RLock()
	set := c.records.Copy()
	c.mu.RUnlock()

	if err := records.SaveSnapshot(set, path); err != nil {
		return err
	}

	logging.Debug().
		Str("path", path).
		Int("tables", set.Len()).
		Msg("Snapshot saved")

	return nil
}
