package areatab

import (
	"github.com/areatab/areatab/pkg/grid"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Exporter = (*client)(nil)

// Exporter renders the current record set as a flat sheet grid.
type Exporter interface {
	// Export plans a column layout over the current tables and
	// serializes them into a grid
	Export() (*grid.Grid, error)

	// ExportTo exports and writes the grid to a CSV sheet file
	ExportTo(path string) error
}

// Export plans a column layout over the current tables and serializes
// them into a grid.
func (c *client) Export() (*grid.Grid, error) {
	c.mu.RLock()
	tables := c.records.List()
	l := layout.Plan(tables, c.schema)
	g := grid.Write(tables, l, c.schema)
	c.mu.RUnlock()

	logging.Debug().
		Int("tables", len(tables)).
		Int("columns", l.Width()).
		Msg("Exported record set to grid")

	return g, nil
}

// ExportTo exports and writes the grid to a CSV sheet file.
func (c *client) ExportTo(path string) error {
	g, err := c.Export()
	if err != nil {
		return err
	}
	if err := grid.WriteFile(path, g, grid.WithDelimiter(c.options.delimiter)); err != nil {
		return err
	}

	logging.Info().
		Str("path", path).
		Int("rows", g.NumDataRows()).
		Msg("Sheet written")

	return nil
}
