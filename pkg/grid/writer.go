package grid

import (
	"fmt"

	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

// Write serializes tables into a flat grid under the given layout: two
// header rows labeled from the schema, then one data row per table in
// iteration order, always. Write never mutates the tables. Keys the
// layout does not carry are skipped silently; that can only happen when
// the layout was planned over a different record set.
func Write(tables []*records.Table, l *layout.Layout, schema layout.Schema) *Grid {
	g := New()
	primary, secondary := headerCells(l, schema)
	g.AppendRow(primary)
	g.AppendRow(secondary)
	for _, table := range tables {
		g.AppendRow(dataCells(table, l))
	}
	return g
}

// headerCells renders the two header rows: primary labels on row 1 at
// each block's first column, the variant label and "parameter n" tags
// on row 2 over the second column of each pair.
func headerCells(l *layout.Layout, schema layout.Schema) (primary, secondary []string) {
	width := l.Width()
	primary = make([]string, width)
	secondary = make([]string, width)

	label := func(row []string, key, text string) {
		if col, ok := l.Column(key); ok {
			row[col-1] = text
		}
	}
	label(primary, layout.KeyHandle, schema.HandleLabel)
	label(primary, layout.KeyParzelle, schema.ParzelleLabel)
	label(primary, layout.KeyNumber, schema.NumberLabel)
	label(primary, layout.KeyAddress, schema.AddressLabel)

	for _, category := range l.Categories() {
		if params := l.ParameterKeys(category); len(params) > 0 {
			if first, ok := l.Column(params[0]); ok && first > 1 {
				primary[first-2] = category
			}
			for n, key := range params {
				label(secondary, key, fmt.Sprintf("%s %d", schema.ParameterPrefix, n+1))
			}
			continue
		}
		label(primary, layout.CategoryKey(category), category)
		label(secondary, layout.VariantKey(category), schema.VariantLabel)
	}
	return primary, secondary
}

// dataCells renders one table's row. Areas are formatted with the fixed
// numeric form of records.FormatArea; the address is written in its
// single-line canonical form.
func dataCells(t *records.Table, l *layout.Layout) []string {
	row := make([]string, l.Width())
	set := func(key, value string) {
		if col, ok := l.Column(key); ok {
			row[col-1] = value
		}
	}
	set(layout.KeyHandle, t.Handle)
	set(layout.KeyParzelle, t.Parzelle)
	set(layout.KeyNumber, t.Number)
	set(layout.KeyAddress, records.CanonicalAddress(t.Address))

	for i := range t.Items {
		writeItem(row, &t.Items[i], l)
	}
	return row
}

// writeItem fills the cells of one item's category block.
func writeItem(row []string, item *records.Item, l *layout.Layout) {
	if params := l.ParameterKeys(item.Name); len(params) > 0 {
		writeParameterBlock(row, item, l, params)
		return
	}

	if col, ok := l.Column(layout.VariantKey(item.Name)); ok && len(item.SubItems) > 0 {
		// One (area, label) pair; only the first sub-item is
		// representable in it.
		sub := &item.SubItems[0]
		if col > 1 {
			row[col-2] = records.FormatArea(sub.Area)
		}
		row[col-1] = sub.Name
		return
	}

	if len(item.SubItems) > 0 {
		return
	}
	if col, ok := l.Column(layout.CategoryKey(item.Name)); ok {
		row[col-1] = records.FormatArea(item.Area)
	}
}

// writeParameterBlock fills the repeating (area, name) pairs of the
// multi-parameter category. An item without sub-items puts its own area
// into the first pair's area column and leaves the name cell empty.
func writeParameterBlock(row []string, item *records.Item, l *layout.Layout, params []string) {
	if len(item.SubItems) == 0 {
		if col, ok := l.Column(params[0]); ok && col > 1 {
			row[col-2] = records.FormatArea(item.Area)
		}
		return
	}
	for i := range item.SubItems {
		if i >= len(params) {
			break
		}
		sub := &item.SubItems[i]
		col, ok := l.Column(params[i])
		if !ok {
			continue
		}
		if col > 1 {
			row[col-2] = records.FormatArea(sub.Area)
		}
		row[col-1] = sub.Name
	}
}
