package grid

import (
	"fmt"
	"strings"

	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

// Read deserializes a grid's data rows into a record set under the
// given layout, normally one recovered from the grid's own header with
// layout.ReadHeader. Rows with an empty handle cell are skipped as
// filler. A row either becomes a complete table or contributes nothing:
// the first cell that fails to parse discards the whole row with a
// diagnostic keyed by its row number. A handle seen a second time keeps
// its first row and reports the later one. Read-only flags do not
// travel through the flat format; every deserialized field is writable
// until the caller re-derives protection from its own sources.
func Read(g *Grid, l *layout.Layout) (*records.Set, diag.List, error) {
	if missing := missingKeys(l); len(missing) > 0 {
		return nil, nil, errors.NewStructuralError("layout lacks mandatory columns", missing)
	}
	handleCol, _ := l.Column(layout.KeyHandle)

	set := records.NewSet()
	var diags diag.List
	for rowNum := FirstDataRow; rowNum <= g.NumRows(); rowNum++ {
		if records.NormalizeHandle(g.Cell(rowNum, handleCol)) == "" {
			continue
		}
		table, err := readRow(g, l, rowNum)
		if err != nil {
			diags = append(diags, diag.NewRowParse(rowNum, err.Error()))
			continue
		}
		if err := set.Add(table); err != nil {
			diags = append(diags, diag.NewDuplicateHandle(table.Handle, rowNum))
		}
	}
	return set, diags, nil
}

// missingKeys returns the mandatory logical keys the layout lacks.
func missingKeys(l *layout.Layout) []string {
	var missing []string
	for _, key := range []string{layout.KeyHandle, layout.KeyParzelle, layout.KeyNumber, layout.KeyAddress} {
		if !l.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// readRow parses one data row into a table. The first parse failure
// aborts the row.
func readRow(g *Grid, l *layout.Layout, rowNum int) (*records.Table, error) {
	cell := func(key string) string {
		col, _ := l.Column(key)
		return strings.TrimSpace(g.Cell(rowNum, col))
	}
	table := &records.Table{
		Handle:   records.NormalizeHandle(cell(layout.KeyHandle)),
		Parzelle: cell(layout.KeyParzelle),
		Number:   cell(layout.KeyNumber),
		Address:  cell(layout.KeyAddress),
	}
	for _, category := range l.Categories() {
		if err := readCategory(g, l, rowNum, table, category); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// readCategory parses one category block of a row into zero or one
// item. A plain or variant category contributes an item only when its
// area cell is non-empty; a non-empty variant label moves the area onto
// a single sub-item of that name.
func readCategory(g *Grid, l *layout.Layout, rowNum int, table *records.Table, category string) error {
	if params := l.ParameterKeys(category); len(params) > 0 {
		return readParameterBlock(g, l, rowNum, table, category, params)
	}

	areaCol, ok := l.Column(layout.CategoryKey(category))
	if !ok {
		return nil
	}
	areaText := g.Cell(rowNum, areaCol)
	if strings.TrimSpace(areaText) == "" {
		return nil
	}
	area, err := records.ParseArea(areaText)
	if err != nil {
		return cellError(category, err)
	}

	item := records.Item{Name: category, Area: area}
	if variantCol, ok := l.Column(layout.VariantKey(category)); ok {
		if name := strings.TrimSpace(g.Cell(rowNum, variantCol)); name != "" {
			item.Area = nil
			item.SubItems = []records.SubItem{{Name: name, Area: area}}
		}
	}
	table.Items = append(table.Items, item)
	return nil
}

// readParameterBlock walks the (area, name) pairs of the
// multi-parameter category. A named slot becomes a sub-item under the
// category's item, created on first need; an unnamed slot with an area
// sets the item's own area; a fully empty slot contributes nothing.
func readParameterBlock(g *Grid, l *layout.Layout, rowNum int, table *records.Table, category string, params []string) error {
	var item *records.Item
	ensure := func() *records.Item {
		if item == nil {
			table.Items = append(table.Items, records.Item{Name: category})
			item = &table.Items[len(table.Items)-1]
		}
		return item
	}

	for _, key := range params {
		nameCol, _ := l.Column(key)
		name := strings.TrimSpace(g.Cell(rowNum, nameCol))
		areaText := g.Cell(rowNum, nameCol-1)
		if name == "" && strings.TrimSpace(areaText) == "" {
			continue
		}
		area, err := records.ParseArea(areaText)
		if err != nil {
			return cellError(slotLabel(key), err)
		}
		if name == "" {
			ensure().Area = area
			continue
		}
		entry := ensure()
		entry.SubItems = append(entry.SubItems, records.SubItem{Name: name, Area: area})
	}
	return nil
}

// slotLabel renders a logical key for a diagnostic message.
func slotLabel(key string) string {
	category, qualifier := layout.ParseKey(key)
	if qualifier == "" {
		return category
	}
	return category + " " + qualifier
}

func cellError(column string, err error) error {
	return fmt.Errorf("column %s: %w", column, err)
}
