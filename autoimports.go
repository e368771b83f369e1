package areatab

import (
	"time"

	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ AutoImporter = (*client)(nil)

// AutoImporter provides controls for automatic sheet imports.
type AutoImporter interface {
	// AutoImportsOn begins periodic imports of the configured sheet path
	AutoImportsOn() error

	// AutoImportsOff stops automatic imports
	AutoImportsOff() error
}

// AutoImportsOn begins periodic imports of the configured sheet path.
func (c *client) AutoImportsOn() error {
	if c.options.autoImportInterval <= 0 {
		return &errors.ValidationError{
			Field:   "autoImportInterval",
			Value:   c.options.autoImportInterval,
			Message: "import interval must be positive",
		}
	}
	if c.options.autoImportPath == "" {
		return &errors.ValidationError{
			Field:   "autoImportPath",
			Value:   "",
			Message: "a sheet path is required for automatic imports",
		}
	}

	// Stop any existing auto-imports to prevent resource leaks
	if err := c.AutoImportsOff(); err != nil {
		return err
	}

	// Recreate stopCh since it was closed in AutoImportsOff
	c.stopCh = make(chan struct{})

	c.importTicker = time.NewTicker(c.options.autoImportInterval)

	go func(ticker *time.Ticker, stopCh chan struct{}) {
		for {
			select {
			case <-ticker.C:
				if _, err := c.ImportFile(c.options.autoImportPath); err != nil {
					// Log but keep the ticker running; a sheet mid-save
					// or temporarily missing is recoverable.
					logging.Error().
						Err(err).
						Str("path", c.options.autoImportPath).
						Msg("Auto-import failed")
				}
			case <-stopCh:
				return
			}
		}
	}(c.importTicker, c.stopCh)

	return nil
}

// AutoImportsOff stops automatic imports.
func (c *client) AutoImportsOff() error {
	if c.importTicker != nil {
		c.importTicker.Stop()
		c.importTicker = nil
	}
	select {
	case <-c.stopCh:
		// Already closed
	default:
		close(c.stopCh)
	}
	return nil
}
