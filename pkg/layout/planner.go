package layout

import (
	"github.com/areatab/areatab/pkg/records"
)

// categoryShape is the planner's registry entry for one category: its
// first-seen name and the distinct sub-item names observed under it,
// both in first-seen order.
type categoryShape struct {
	name     string
	subNames []string
	subSeen  map[string]bool
}

// Plan derives the column layout for a record set. It is a pure function
// of the tables' shape: the same tables in the same order always produce
// the same layout, and the tables are never mutated. The plan is
// recomputed before every export and never persisted.
//
// Columns are assigned in discovery order: the three identity columns,
// then one block per distinct category in first-seen order, then the
// trailing address column. A category without sub-items gets a single
// area column. A category with sub-items gets an (area, variant-label)
// pair; when more than one distinct sub-item name appears under a
// non-special category, only the first-seen name is representable in
// that single pair. The special category gets one (area, name) pair per
// distinct sub-item name, labeled "parameter 1", "parameter 2", … .
func Plan(tables []*records.Table, schema Schema) *Layout {
	shapes := collectShapes(tables)

	l := New()
	l.Add(KeyHandle, 1)
	l.Add(KeyParzelle, 2)
	l.Add(KeyNumber, 3)

	next := 4
	for _, shape := range shapes {
		switch {
		case schema.IsSpecial(shape.name) && len(shape.subNames) > 0:
			start := next
			for n := range shape.subNames {
				// Pair layout: area column first, name column after it.
				l.Add(ParameterKey(shape.name, n+1), next+1)
				next += 2
			}
			l.AddSpan(Span{Label: shape.name, Start: start, End: next - 1})

		case len(shape.subNames) == 0:
			l.Add(CategoryKey(shape.name), next)
			next++

		default:
			l.Add(CategoryKey(shape.name), next)
			l.Add(VariantKey(shape.name), next+1)
			l.AddSpan(Span{Label: shape.name, Start: next, End: next + 1})
			next += 2
		}
	}

	l.Add(KeyAddress, next)
	return l
}

// collectShapes walks every table's items in order and records each
// distinct category with its distinct sub-item names, preserving
// first-seen order throughout.
func collectShapes(tables []*records.Table) []*categoryShape {
	var order []*categoryShape
	index := make(map[string]*categoryShape)

	for _, table := range tables {
		for _, item := range table.Items {
			shape, ok := index[item.Name]
			if !ok {
				shape = &categoryShape{
					name:    item.Name,
					subSeen: make(map[string]bool),
				}
				index[item.Name] = shape
				order = append(order, shape)
			}
			for _, sub := range item.SubItems {
				if !shape.subSeen[sub.Name] {
					shape.subSeen[sub.Name] = true
					shape.subNames = append(shape.subNames, sub.Name)
				}
			}
		}
	}
	return order
}
