// Package diag provides the diagnostic types used to report recoverable
// problems during grid imports and table reconciliation. Diagnostics are
// accumulated instead of aborting: a malformed row, a duplicate handle, or
// a write to a read-only field each produce one diagnostic while the rest
// of the work proceeds. Structural problems that make a grid unreadable
// are errors, not diagnostics; see pkg/errors.
package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic.
type Kind string

// Diagnostic kinds emitted during import and reconciliation.
const (
	// KindRowParse reports a data row that could not be converted into a
	// record. The whole row is dropped.
	KindRowParse Kind = "row-parse"

	// KindDuplicateHandle reports a second occurrence of a handle in a
	// grid. The first occurrence wins; the duplicate row is dropped.
	KindDuplicateHandle Kind = "duplicate-handle"

	// KindOrphanSubEntry reports a sub-entry cell that has no parent
	// entry to attach to. The cell is skipped.
	KindOrphanSubEntry Kind = "orphan-sub-entry"

	// KindUnmatchedHandle reports an imported handle with no counterpart
	// in the current table.
	KindUnmatchedHandle Kind = "unmatched-handle"

	// KindUnmatchedParent reports an imported entry carrying sub-entries
	// whose parent does not exist in the current record.
	KindUnmatchedParent Kind = "unmatched-parent"

	// KindReadOnlySkip reports an incoming change that was suppressed
	// because the target field is protected.
	KindReadOnlySkip Kind = "readonly-skip"

	// KindFieldError reports a single field that failed to reconcile
	// while the rest of its record succeeded.
	KindFieldError Kind = "field-error"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Diagnostic describes one recoverable problem, tied to the handle, grid
// row, or field path it occurred at. Zero values mean "not applicable":
// a row-parse diagnostic has no path, a readonly-skip has no row.
type Diagnostic struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Handle  string `json:"handle,omitempty" yaml:"handle,omitempty"`
	Row     int    `json:"row,omitempty" yaml:"row,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// String returns a single-line rendering of the diagnostic.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Kind.String())
	if d.Handle != "" {
		fmt.Fprintf(&b, " [%s]", d.Handle)
	}
	if d.Row > 0 {
		fmt.Fprintf(&b, " row %d", d.Row)
	}
	if d.Path != "" {
		fmt.Fprintf(&b, " %s", d.Path)
	}
	b.WriteString(": ")
	b.WriteString(d.Message)
	return b.String()
}

// NewRowParse creates a row-parse diagnostic for the given grid row.
func NewRowParse(row int, message string) Diagnostic {
	return Diagnostic{Kind: KindRowParse, Row: row, Message: message}
}

// NewDuplicateHandle creates a duplicate-handle diagnostic.
func NewDuplicateHandle(handle string, row int) Diagnostic {
	return Diagnostic{
		Kind:    KindDuplicateHandle,
		Handle:  handle,
		Row:     row,
		Message: "handle already seen, keeping first occurrence",
	}
}

// NewOrphanSubEntry creates an orphan-sub-entry diagnostic.
func NewOrphanSubEntry(handle string, row int, column string) Diagnostic {
	return Diagnostic{
		Kind:    KindOrphanSubEntry,
		Handle:  handle,
		Row:     row,
		Message: fmt.Sprintf("sub-entry in column %s has no parent entry", column),
	}
}

// NewUnmatchedHandle creates an unmatched-handle diagnostic.
func NewUnmatchedHandle(handle string) Diagnostic {
	return Diagnostic{
		Kind:    KindUnmatchedHandle,
		Handle:  handle,
		Message: "no matching record in current table",
	}
}

// NewUnmatchedParent creates an unmatched-parent diagnostic.
func NewUnmatchedParent(handle, path string) Diagnostic {
	return Diagnostic{
		Kind:    KindUnmatchedParent,
		Handle:  handle,
		Path:    path,
		Message: "imported entry carries sub-entries but no matching parent exists",
	}
}

// NewReadOnlySkip creates a readonly-skip diagnostic.
func NewReadOnlySkip(handle, path string) Diagnostic {
	return Diagnostic{
		Kind:    KindReadOnlySkip,
		Handle:  handle,
		Path:    path,
		Message: "field is read only, incoming change suppressed",
	}
}

// NewFieldError creates a field-error diagnostic.
func NewFieldError(handle, path, message string) Diagnostic {
	return Diagnostic{
		Kind:    KindFieldError,
		Handle:  handle,
		Path:    path,
		Message: message,
	}
}

// List is an ordered collection of diagnostics. Order is emission order.
type List []Diagnostic

// ByKind returns the diagnostics of the given kind, preserving order.
func (l List) ByKind(kind Kind) List {
	var out List
	for _, d := range l {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// ByHandle returns the diagnostics for the given handle, preserving order.
func (l List) ByHandle(handle string) List {
	var out List
	for _, d := range l {
		if d.Handle == handle {
			out = append(out, d)
		}
	}
	return out
}

// HasKind reports whether any diagnostic of the given kind is present.
func (l List) HasKind(kind Kind) bool {
	for _, d := range l {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// Strings renders every diagnostic on its own line.
func (l List) Strings() []string {
	out := make([]string, 0, len(l))
	for _, d := range l {
		out = append(out, d.String())
	}
	return out
}

// String joins all diagnostics with newlines.
func (l List) String() string {
	return strings.Join(l.Strings(), "\n")
}
