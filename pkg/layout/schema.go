// Package layout derives and recovers the flat column plan that connects
// hierarchical area records with their two-header-row grid form. The
// Layout Planner computes a plan from a record set's shape; the Layout
// Reader reconstructs a plan from a grid's header labels. Both consult
// the same Schema descriptor, which carries the label vocabulary and the
// per-category layout arity.
package layout

import (
	"strings"

	"github.com/areatab/areatab/pkg/errors"
)

// Arity describes how a category's sub-items map to columns.
type Arity string

// String returns the string representation of the arity.
func (a Arity) String() string {
	return string(a)
}

// Category arities.
const (
	// ArityPlain lays the category out as a single area column.
	ArityPlain Arity = "plain"

	// ArityVariant lays the category out as an area column plus one
	// variant-label column when sub-items exist.
	ArityVariant Arity = "variant"

	// ArityParameters lays the category out as repeating (area, name)
	// column pairs, one per distinct sub-item, labeled "parameter n".
	ArityParameters Arity = "parameters"
)

// CategoryDef declares one category of the vocabulary: its canonical
// header label (which doubles as the item name on import) and its arity.
type CategoryDef struct {
	Label string `json:"label" yaml:"label"`
	Arity Arity  `json:"arity" yaml:"arity"`
}

// Schema is the versioned descriptor of the grid vocabulary. It fixes
// the identity and address labels, the variant-label text, the parameter
// prefix, and the ordered category definitions. The header labels it
// carries are the wire format of the flat representation; renaming any
// of them breaks compatibility with existing sheets.
type Schema struct {
	Version int `json:"version" yaml:"version"`

	// Fixed labels
	HandleLabel   string `json:"handle_label" yaml:"handle_label"`
	ParzelleLabel string `json:"parzelle_label" yaml:"parzelle_label"`
	NumberLabel   string `json:"number_label" yaml:"number_label"`
	AddressLabel  string `json:"address_label" yaml:"address_label"`

	// VariantLabel is the secondary-row label of a variant column ("Art").
	VariantLabel string `json:"variant_label" yaml:"variant_label"`

	// ParameterPrefix is the secondary-row label prefix of parameter
	// name columns ("parameter", rendered as "parameter 1", "parameter 2", …).
	ParameterPrefix string `json:"parameter_prefix" yaml:"parameter_prefix"`

	// Categories in canonical order.
	Categories []CategoryDef `json:"categories" yaml:"categories"`
}

// DefaultSchema returns the fixed vocabulary this system ships with:
// identity labels Handle / Parz. / Enteig, trailing Address, variant
// categories Landerwerb and Dienstbarkeit, and the special category
// Temp. Nutzung laid out as parameter pairs.
func DefaultSchema() Schema {
	return Schema{
		Version:         1,
		HandleLabel:     "Handle",
		ParzelleLabel:   "Parz.",
		NumberLabel:     "Enteig",
		AddressLabel:    "Address",
		VariantLabel:    "Art",
		ParameterPrefix: "parameter",
		Categories: []CategoryDef{
			{Label: "Landerwerb", Arity: ArityVariant},
			{Label: "Dienstbarkeit", Arity: ArityVariant},
			{Label: "Temp. Nutzung", Arity: ArityParameters},
		},
	}
}

// Category returns the definition whose label matches name
// case-insensitively, and whether one exists.
func (s Schema) Category(name string) (CategoryDef, bool) {
	trimmed := strings.TrimSpace(name)
	for _, def := range s.Categories {
		if strings.EqualFold(def.Label, trimmed) {
			return def, true
		}
	}
	return CategoryDef{}, false
}

// IsSpecial reports whether name denotes a parameters-arity category.
func (s Schema) IsSpecial(name string) bool {
	def, ok := s.Category(name)
	return ok && def.Arity == ArityParameters
}

// Validate checks the descriptor for usability: all fixed labels
// non-empty, category labels non-empty and distinct (case-insensitive),
// and every arity known.
func (s Schema) Validate() error {
	fixed := map[string]string{
		"handle_label":     s.HandleLabel,
		"parzelle_label":   s.ParzelleLabel,
		"number_label":     s.NumberLabel,
		"address_label":    s.AddressLabel,
		"variant_label":    s.VariantLabel,
		"parameter_prefix": s.ParameterPrefix,
	}
	for field, label := range fixed {
		if strings.TrimSpace(label) == "" {
			return &errors.ValidationError{Field: field, Message: "cannot be empty"}
		}
	}

	seen := make(map[string]bool, len(s.Categories))
	for i, def := range s.Categories {
		label := strings.TrimSpace(def.Label)
		if label == "" {
			return &errors.ValidationError{
				Field:   "categories",
				Message: "category label cannot be empty",
			}
		}
		folded := strings.ToLower(label)
		if seen[folded] {
			return &errors.ValidationError{
				Field:   "categories",
				Value:   def.Label,
				Message: "duplicate category label",
			}
		}
		seen[folded] = true

		switch def.Arity {
		case ArityPlain, ArityVariant, ArityParameters:
		default:
			return &errors.ValidationError{
				Field:   "categories",
				Value:   string(def.Arity),
				Message: "unknown arity for category " + s.Categories[i].Label,
			}
		}
	}
	return nil
}
