package areatab

import (
	"github.com/areatab/areatab/pkg/grid"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/logging"
	"github.com/areatab/areatab/pkg/reconcile"
)

// Compile-time interface check to ensure proper implementation.
var _ Importer = (*client)(nil)

// Importer parses an edited sheet and reconciles it into the record
// set.
type Importer interface {
	// Import recovers the column layout from the grid's header rows,
	// parses the data rows, and reconciles the parsed tables into the
	// record set
	Import(g *grid.Grid) (*reconcile.Result, error)

	// ImportFile reads a CSV sheet file and imports it
	ImportFile(path string) (*reconcile.Result, error)
}

// Import recovers the column layout from the grid's header rows,
// parses the data rows, and reconciles the parsed tables into the
// record set. Row-scoped parse diagnostics and reconciliation
// diagnostics are returned together on the result.
func (c *client) Import(g *grid.Grid) (*reconcile.Result, error) {
	l, err := layout.ReadHeader(g.Header(), c.schema)
	if err != nil {
		return nil, err
	}

	imported, readDiags, err := grid.Read(g, l)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Int("tables", imported.Len()).
		Int("parse_diagnostics", len(readDiags)).
		Msg("Sheet parsed")

	c.mu.Lock()
	result, err := c.reconciler.Reconcile(c.records, imported)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	// Parse diagnostics come first: they are row-scoped and precede
	// the reconciliation in time.
	result.Diagnostics = append(readDiags, result.Diagnostics...)

	log := logging.Info().
		Str("run_id", result.ID).
		Int("changes", result.Stats.Changes).
		Int("diagnostics", len(result.Diagnostics)).
		Int("matched", result.Stats.TablesMatched).
		Int("unmatched", result.Stats.TablesUnmatched)
	if result.DryRun {
		log = log.Bool("dry_run", true)
	}
	log.Msg("Import reconciled")

	c.hooks.triggerResult(result)

	return result, nil
}

// ImportFile reads a CSV sheet file and imports it.
func (c *client) ImportFile(path string) (*reconcile.Result, error) {
	g, err := grid.ReadFile(path, grid.WithDelimiter(c.options.delimiter))
	if err != nil {
		return nil, err
	}
	return c.Import(g)
}
