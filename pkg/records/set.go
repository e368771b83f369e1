package records

import (
	"github.com/areatab/areatab/pkg/errors"
)

// Set is an ordered, handle-keyed collection of tables. Iteration order
// is insertion order, which makes layout derivation and serialization
// deterministic. A Set is not safe for concurrent mutation; callers that
// share one across goroutines must serialize access themselves.
type Set struct {
	order  []string
	tables map[string]*Table
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		tables: make(map[string]*Table),
	}
}

// NewSetOf creates a Set from tables in the given order.
// It fails on the first empty or duplicate handle.
func NewSetOf(tables ...*Table) (*Set, error) {
	s := NewSet()
	for _, t := range tables {
		if err := s.Add(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a table. The handle is normalized before keying.
// Adding a nil table, an empty handle, or a handle already present fails.
func (s *Set) Add(t *Table) error {
	if t == nil {
		return &errors.ValidationError{Field: "table", Message: "cannot be nil"}
	}
	handle := NormalizeHandle(t.Handle)
	if handle == "" {
		return &errors.ValidationError{Field: "handle", Message: "cannot be empty"}
	}
	if _, exists := s.tables[handle]; exists {
		return errors.NewResourceError("add", "record", handle, errors.ErrAlreadyExists)
	}
	t.Handle = handle
	s.order = append(s.order, handle)
	s.tables[handle] = t
	return nil
}

// Get returns the table for a handle and whether it exists.
// The lookup normalizes the handle.
func (s *Set) Get(handle string) (*Table, bool) {
	t, ok := s.tables[NormalizeHandle(handle)]
	return t, ok
}

// Has reports whether a handle is present.
func (s *Set) Has(handle string) bool {
	_, ok := s.tables[NormalizeHandle(handle)]
	return ok
}

// Len returns the number of tables.
func (s *Set) Len() int {
	return len(s.order)
}

// List returns the tables in insertion order. The returned slice is
// fresh but the tables are shared; use Copy for an independent set.
func (s *Set) List() []*Table {
	out := make([]*Table, 0, len(s.order))
	for _, handle := range s.order {
		out = append(out, s.tables[handle])
	}
	return out
}

// Handles returns the handles in insertion order.
func (s *Set) Handles() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// ForEach applies fn to each table in insertion order.
// If fn returns false, iteration stops early.
func (s *Set) ForEach(fn func(t *Table) bool) {
	for _, handle := range s.order {
		if !fn(s.tables[handle]) {
			break
		}
	}
}

// Copy returns a deep copy of the set. Mutating the copy never touches
// the original tables.
func (s *Set) Copy() *Set {
	out := NewSet()
	for _, handle := range s.order {
		out.order = append(out.order, handle)
		out.tables[handle] = s.tables[handle].Copy()
	}
	return out
}
