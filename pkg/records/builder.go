package records

import (
	"fmt"
	"strings"

	"github.com/areatab/areatab/pkg/diag"
)

// Builder assembles one Table from a linear scan of raw measurement
// entries, the shape host documents deliver them in: a flat list where a
// leading "-" on the name marks a sub-entry belonging to the most recent
// main entry. The marker is stripped before storage, so item and
// sub-item names never begin with "-". A sub-entry arriving before any
// main entry has no parent and is dropped with a diagnostic.
type Builder struct {
	table *Table
	diags diag.List
}

// NewBuilder creates a Builder for the given handle.
// The handle is normalized immediately.
func NewBuilder(handle string) *Builder {
	return &Builder{
		table: &Table{Handle: NormalizeHandle(handle)},
	}
}

// WithNumber sets the ordinance number.
func (b *Builder) WithNumber(number string) *Builder {
	b.table.Number = number
	return b
}

// WithParzelle sets the parcel designation.
func (b *Builder) WithParzelle(parzelle string) *Builder {
	b.table.Parzelle = parzelle
	return b
}

// WithAddress sets the owner address. Multi-line input is kept as-is.
func (b *Builder) WithAddress(address string) *Builder {
	b.table.Address = address
	return b
}

// AddEntry appends one raw entry. A name beginning with "-" attaches as
// a sub-entry to the most recent main entry; anything else starts a new
// main entry.
func (b *Builder) AddEntry(name string, area *float64) *Builder {
	return b.addEntry(name, area, false)
}

// AddReadonlyEntry appends one raw entry whose area is protected against
// reconciliation writes.
func (b *Builder) AddReadonlyEntry(name string, area *float64) *Builder {
	return b.addEntry(name, area, true)
}

func (b *Builder) addEntry(name string, area *float64, readonly bool) *Builder {
	trimmed := strings.TrimSpace(name)

	if strings.HasPrefix(trimmed, "-") {
		subName := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		if len(b.table.Items) == 0 {
			b.diags = append(b.diags, diag.Diagnostic{
				Kind:    diag.KindOrphanSubEntry,
				Handle:  b.table.Handle,
				Message: fmt.Sprintf("sub-entry %q has no preceding main entry", subName),
			})
			return b
		}
		parent := &b.table.Items[len(b.table.Items)-1]
		parent.SubItems = append(parent.SubItems, SubItem{
			Name:     subName,
			Area:     copyFloat(area),
			Readonly: readonly,
		})
		return b
	}

	b.table.Items = append(b.table.Items, Item{
		Name:     trimmed,
		Area:     copyFloat(area),
		Readonly: readonly,
	})
	return b
}

// Build returns the assembled table and any diagnostics collected along
// the way. The Builder must not be reused afterwards.
func (b *Builder) Build() (*Table, diag.List) {
	return b.table, b.diags
}
