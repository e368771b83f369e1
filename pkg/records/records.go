// Package records defines the hierarchical area-measurement model: a Table
// holds the identity of one surveyed property (handle, ordinance number,
// parcel, address) plus its ordered acquisition Items, each of which may
// carry ordered SubItems. The package also provides the ordered Set
// collection, handle normalization, address canonicalization, the area
// text codec, a linear-scan Builder, and YAML snapshot persistence.
//
// Areas are *float64 throughout: nil means "no measurement present", which
// is distinct from a measured zero. Nothing in this package ever turns an
// unparsable value into a zero area.
package records

import "strings"

// Table represents one area-measurement record for a single property.
type Table struct {
	// Core identification
	Handle   string `json:"handle" yaml:"handle"`                         // Unique upper-cased key
	Number   string `json:"number,omitempty" yaml:"number,omitempty"`     // Ordinance number
	Parzelle string `json:"parzelle,omitempty" yaml:"parzelle,omitempty"` // Parcel designation
	Address  string `json:"address,omitempty" yaml:"address,omitempty"`   // Owner address, stored multi-line

	// Acquisition entries in document order
	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Item represents one acquisition category entry of a table.
type Item struct {
	Name     string    `json:"name" yaml:"name"`                             // Category name, never begins with "-"
	Area     *float64  `json:"area,omitempty" yaml:"area,omitempty"`         // Measured area, nil when absent
	Readonly bool      `json:"readonly,omitempty" yaml:"readonly,omitempty"` // Protected against reconciliation writes
	SubItems []SubItem `json:"sub_items,omitempty" yaml:"sub_items,omitempty"`
}

// SubItem represents a named sub-entry nested under an Item.
type SubItem struct {
	Name     string   `json:"name" yaml:"name"`
	Area     *float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Readonly bool     `json:"readonly,omitempty" yaml:"readonly,omitempty"`
}

// NormalizeHandle trims surrounding whitespace and upper-cases a handle.
// All handle comparisons go through this normalization.
func NormalizeHandle(handle string) string {
	return strings.ToUpper(strings.TrimSpace(handle))
}

// Area returns a pointer to the given value. It exists because the model
// stores areas as *float64 to distinguish absent from zero.
func Area(v float64) *float64 {
	return &v
}

// Item returns the first item with the given name and whether it exists.
func (t *Table) Item(name string) (*Item, bool) {
	for i := range t.Items {
		if t.Items[i].Name == name {
			return &t.Items[i], true
		}
	}
	return nil, false
}

// SubItem returns the first sub-item with the given name and whether it exists.
func (it *Item) SubItem(name string) (*SubItem, bool) {
	for i := range it.SubItems {
		if it.SubItems[i].Name == name {
			return &it.SubItems[i], true
		}
	}
	return nil, false
}

// HasArea reports whether the item carries a measurement.
func (it *Item) HasArea() bool {
	return it.Area != nil
}

// HasArea reports whether the sub-item carries a measurement.
func (s *SubItem) HasArea() bool {
	return s.Area != nil
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Handle:   t.Handle,
		Number:   t.Number,
		Parzelle: t.Parzelle,
		Address:  t.Address,
	}
	if len(t.Items) > 0 {
		out.Items = make([]Item, len(t.Items))
		for i := range t.Items {
			out.Items[i] = t.Items[i].Copy()
		}
	}
	return out
}

// Copy returns a deep copy of the item.
func (it Item) Copy() Item {
	out := Item{
		Name:     it.Name,
		Area:     copyFloat(it.Area),
		Readonly: it.Readonly,
	}
	if len(it.SubItems) > 0 {
		out.SubItems = make([]SubItem, len(it.SubItems))
		for i := range it.SubItems {
			out.SubItems[i] = it.SubItems[i].Copy()
		}
	}
	return out
}

// Copy returns a deep copy of the sub-item.
func (s SubItem) Copy() SubItem {
	return SubItem{
		Name:     s.Name,
		Area:     copyFloat(s.Area),
		Readonly: s.Readonly,
	}
}

// copyFloat copies an optional float so copies never share storage.
func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
