// Package grid holds the flat, spreadsheet-like representation of area
// records: a rectangular region of string cells with a two-row header
// followed by one data row per record. The serializer and deserializer
// in this package translate between Grid and the hierarchical model in
// pkg/records under a column layout from pkg/layout; the CSV codec
// in csv.go moves grids to and from sheet files.
package grid

import (
	"github.com/areatab/areatab/pkg/layout"
)

// HeaderRowCount is the number of header rows at the top of a grid.
const HeaderRowCount = 2

// FirstDataRow is the 1-based row number of the first data row.
const FirstDataRow = HeaderRowCount + 1

// Grid is a flat region of string cells. Rows may be ragged (shorter
// than the widest row); out-of-range access reads as the empty cell.
type Grid struct {
	rows [][]string
}

// New creates an empty grid.
func New() *Grid {
	return &Grid{}
}

// FromRows creates a grid over the given rows. The grid takes ownership
// of the slice.
func FromRows(rows [][]string) *Grid {
	return &Grid{rows: rows}
}

// AppendRow appends one row of cells.
func (g *Grid) AppendRow(cells []string) {
	g.rows = append(g.rows, cells)
}

// NumRows returns the total number of rows, header rows included.
func (g *Grid) NumRows() int {
	return len(g.rows)
}

// NumDataRows returns the number of rows below the header region.
func (g *Grid) NumDataRows() int {
	if len(g.rows) <= HeaderRowCount {
		return 0
	}
	return len(g.rows) - HeaderRowCount
}

// Width returns the length of the widest row.
func (g *Grid) Width() int {
	width := 0
	for _, row := range g.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the cell at 1-based (row, col), or "" when either index
// is out of range. Cell text is returned untrimmed.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.rows) {
		return ""
	}
	cells := g.rows[row-1]
	if col < 1 || col > len(cells) {
		return ""
	}
	return cells[col-1]
}

// Row returns the cells of the 1-based row, or nil when out of range.
func (g *Grid) Row(row int) []string {
	if row < 1 || row > len(g.rows) {
		return nil
	}
	return g.rows[row-1]
}

// Rows returns all rows, header rows first.
func (g *Grid) Rows() [][]string {
	return g.rows
}

// Header returns the two-row header region in the form the layout
// reader consumes. Missing rows read as empty.
func (g *Grid) Header() layout.HeaderRows {
	return layout.HeaderRows{
		Primary:   g.Row(1),
		Secondary: g.Row(2),
	}
}
