package reconcile

import "fmt"

// Field paths used in change instructions and diagnostics.
const (
	PathNumber   = "number"
	PathParzelle = "parzelle"
	PathAddress  = "address"
)

// ItemPath returns the path of a table's item, e.g. "items[Landerwerb]".
func ItemPath(name string) string {
	return fmt.Sprintf("items[%s]", name)
}

// ItemAreaPath returns the path of an item's area field.
func ItemAreaPath(name string) string {
	return ItemPath(name) + ".area"
}

// SubItemAreaPath returns the path of a sub-item's area field, scoped
// under its parent item.
func SubItemAreaPath(item, sub string) string {
	return fmt.Sprintf("items[%s].sub[%s].area", item, sub)
}

// ChangeInstruction is one field-level update for the host-document
// collaborator to apply: which table, which field, and the old and new
// values as transport text. The reconciler emits instructions in the
// order it visits the imported records, fields in comparison order.
type ChangeInstruction struct {
	Handle string `json:"handle" yaml:"handle"` // table the change belongs to
	Path   string `json:"path" yaml:"path"`     // field path within the table
	Old    string `json:"old" yaml:"old"`       // value before the change
	New    string `json:"new" yaml:"new"`       // value after the change
}

// String renders the instruction as a single line.
func (c ChangeInstruction) String() string {
	return fmt.Sprintf("%s %s: %q -> %q", c.Handle, c.Path, c.Old, c.New)
}
