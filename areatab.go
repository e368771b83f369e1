// Package areatab provides the main entry point for the areatab
// reconciliation engine. It manages a set of area tables and keeps it
// in sync with flat sheet exports through a high-level client.
//
// The client wraps the underlying packages with additional features:
// - Export of the current tables to a sheet grid (layout planning included)
// - Import of an edited sheet with layout recovery and reconciliation
// - Event hooks for applied changes, unmatched tables, and diagnostics
// - Periodic re-import of a watched sheet file
// - Thread-safe access with copy-on-read semantics
//
// Example usage:
//
//	// Create a client seeded from a snapshot file
//	at, err := areatab.New(areatab.WithSnapshotPath("records.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer at.AutoImportsOff()
//
//	// Register event hooks
//	at.OnChangeApplied(func(change reconcile.ChangeInstruction) {
//	    log.Printf("applied: %s", change)
//	})
//
//	// Export the current tables to a sheet
//	if err := at.ExportTo("sheet.csv"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// ... the sheet is edited elsewhere ...
//
//	// Import the edited sheet and reconcile
//	result, err := at.ImportFile("sheet.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package areatab

import (
	"sync"
	"time"

	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/logging"
	"github.com/areatab/areatab/pkg/reconcile"
	"github.com/areatab/areatab/pkg/records"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Records provides copy-on-read access to the current record set.
type Records interface {
	// Tables returns a deep copy of the current record set
	Tables() *records.Set
}

// Client manages a record set with sheet export/import, automatic
// re-imports, and event hooks.
type Client interface {

	// Records provides copy-on-read access to the record set
	Records

	// Exporter renders the record set as a sheet grid
	Exporter

	// Importer parses an edited sheet and reconciles it
	Importer

	// Persistence handles record set snapshot operations
	Persistence

	// AutoImporter provides access to automatic import controls
	AutoImporter

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// records is the working record set
	mu      sync.RWMutex
	records *records.Set

	// schema is the vocabulary the sheet headers follow
	schema layout.Schema

	// reconciler merges imported sets into the working set
	reconciler reconcile.Reconciler

	// auto import state
	importTicker *time.Ticker  // ticker driving periodic imports
	stopCh       chan struct{} // stop channel for the import goroutine

	// hooks are the event callbacks for reconciliation outcomes
	hooks *hooks
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	c := &client{
		options: defaults(),
		stopCh:  make(chan struct{}),
		hooks:   newHooks(),
	}

	for _, opt := range opts {
		if err := opt(c.options); err != nil {
			return nil, errors.NewConfigError("client", "applying options", err)
		}
	}
	c.schema = c.options.schema

	reconciler, err := reconcile.New(reconcile.WithDryRun(c.options.dryRun))
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}
	c.reconciler = reconciler

	// Seed the working set: explicit records win, then a snapshot
	// file if one exists, otherwise start empty.
	switch {
	case c.options.initialRecords != nil:
		c.records = c.options.initialRecords
	case c.options.snapshotPath != "":
		set, err := records.LoadSnapshot(c.options.snapshotPath)
		if err != nil {
			if !errors.IsNotFound(err) {
				return nil, err
			}
			logging.Debug().
				Str("path", c.options.snapshotPath).
				Msg("No snapshot found, starting empty")
			set = records.NewSet()
		}
		c.records = set
	default:
		c.records = records.NewSet()
	}

	logging.Debug().
		Int("tables", c.records.Len()).
		Msg("Record set loaded")

	// start auto-imports if enabled
	if c.options.autoImportsEnabled {
		if err := c.AutoImportsOn(); err != nil {
			return nil, errors.WrapResource("start", "auto-imports", "", err)
		}
	}

	return c, nil
}

// Tables returns a deep copy of the current record set.
func (c *client) Tables() *records.Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records.Copy()
}
