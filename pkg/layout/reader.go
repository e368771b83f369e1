package layout

import (
	"strings"

	"github.com/areatab/areatab/pkg/errors"
)

// HeaderRows is the two-row header region of a flat grid: the primary
// labels of row 1 and the secondary labels of row 2. Cells are indexed
// 0-based here; columns in the resulting layout are 1-based.
type HeaderRows struct {
	Primary   []string
	Secondary []string
}

// cell returns the trimmed cell at 1-based column col, or "" when the
// row is shorter than that.
func cellAt(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return strings.TrimSpace(row[col-1])
}

// ReadHeader reconstructs a column layout from a grid's header region
// using only the schema's label vocabulary; there is no structural
// metadata beyond these labels. Primary labels are matched
// case-insensitively. A variant category's pair is recognized by the
// variant label in row 2 of the following column; the special category's
// pairs are recognized by "parameter"-prefixed row-2 labels at a fixed
// stride of 2 columns. Category columns are optional, but a header
// missing any of the identity or address labels is structurally
// unreadable and fails hard.
func ReadHeader(rows HeaderRows, schema Schema) (*Layout, error) {
	l := New()

	col := 1
	for col <= len(rows.Primary) {
		label := cellAt(rows.Primary, col)
		if label == "" {
			col++
			continue
		}

		switch {
		case strings.EqualFold(label, schema.HandleLabel):
			l.Add(KeyHandle, col)
		case strings.EqualFold(label, schema.ParzelleLabel):
			l.Add(KeyParzelle, col)
		case strings.EqualFold(label, schema.NumberLabel):
			l.Add(KeyNumber, col)
		case strings.EqualFold(label, schema.AddressLabel):
			l.Add(KeyAddress, col)
		default:
			def, known := schema.Category(label)
			if !known {
				// Outside the vocabulary; not recoverable from labels.
				col++
				continue
			}
			col = readCategory(l, rows, schema, def, col)
			continue
		}
		col++
	}

	if missing := missingMandatory(l, schema); len(missing) > 0 {
		return nil, errors.NewStructuralError("mandatory header columns absent", missing)
	}
	return l, nil
}

// readCategory registers the block starting at 1-based column col and
// returns the first column after it.
func readCategory(l *Layout, rows HeaderRows, schema Schema, def CategoryDef, col int) int {
	switch def.Arity {
	case ArityParameters:
		slots := 0
		// Name columns sit at col+1, col+3, … while their row-2 label
		// keeps the parameter prefix.
		for next := col + 1; hasParameterLabel(cellAt(rows.Secondary, next), schema); next += 2 {
			slots++
			l.Add(ParameterKey(def.Label, slots), next)
		}
		if slots == 0 {
			l.Add(CategoryKey(def.Label), col)
			return col + 1
		}
		l.AddSpan(Span{Label: def.Label, Start: col, End: col + 2*slots - 1})
		return col + 2*slots

	case ArityVariant:
		if strings.EqualFold(cellAt(rows.Secondary, col+1), schema.VariantLabel) {
			l.Add(CategoryKey(def.Label), col)
			l.Add(VariantKey(def.Label), col+1)
			l.AddSpan(Span{Label: def.Label, Start: col, End: col + 1})
			return col + 2
		}
		l.Add(CategoryKey(def.Label), col)
		return col + 1

	default:
		l.Add(CategoryKey(def.Label), col)
		return col + 1
	}
}

// hasParameterLabel reports whether a row-2 cell marks a parameter name
// column.
func hasParameterLabel(cell string, schema Schema) bool {
	if cell == "" {
		return false
	}
	prefix := strings.ToLower(schema.ParameterPrefix)
	return strings.HasPrefix(strings.ToLower(cell), prefix)
}

// missingMandatory returns the display labels of absent mandatory
// columns, in a fixed report order.
func missingMandatory(l *Layout, schema Schema) []string {
	var missing []string
	mandatory := []struct {
		key   string
		label string
	}{
		{KeyHandle, schema.HandleLabel},
		{KeyParzelle, schema.ParzelleLabel},
		{KeyNumber, schema.NumberLabel},
		{KeyAddress, schema.AddressLabel},
	}
	for _, m := range mandatory {
		if !l.Has(m.key) {
			missing = append(missing, m.label)
		}
	}
	return missing
}
