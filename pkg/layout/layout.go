package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Logical keys of the three identity columns and the trailing address
// column. Category keys are built with CategoryKey, VariantKey, and
// ParameterKey.
const (
	KeyHandle   = "handle"
	KeyParzelle = "parzelle"
	KeyNumber   = "number"
	KeyAddress  = "address"
)

// keySeparator splits a category key from its qualifier.
const keySeparator = "!"

// CategoryKey returns the logical key of a category's area column.
func CategoryKey(category string) string {
	return category
}

// VariantKey returns the logical key of a category's variant-label column.
func VariantKey(category string) string {
	return category + keySeparator + "Art"
}

// ParameterKey returns the logical key of the n-th parameter name column
// of the special category (n is 1-based).
func ParameterKey(category string, n int) string {
	return fmt.Sprintf("%s%sparameter %d", category, keySeparator, n)
}

// ParseKey splits a logical key into its category and qualifier. Plain
// area keys and the identity/address keys have an empty qualifier.
func ParseKey(key string) (category, qualifier string) {
	if i := strings.Index(key, keySeparator); i >= 0 {
		return key[:i], key[i+len(keySeparator):]
	}
	return key, ""
}

// ParameterIndex extracts the 1-based slot number from a "parameter <n>"
// qualifier. It returns false for any other qualifier.
func ParameterIndex(qualifier string) (int, bool) {
	const prefix = "parameter "
	if !strings.HasPrefix(qualifier, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(qualifier, prefix)))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Span is a contiguous run of columns belonging to one category block,
// recorded for downstream visual grouping.
type Span struct {
	Label string `json:"label" yaml:"label"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Layout maps logical keys to 1-based column positions. Key order is
// insertion order, which reproduces the discovery order of the record
// scan that built the plan. A Layout is a value computed per export or
// import and never persisted.
type Layout struct {
	keys    []string
	columns map[string]int
	spans   []Span
	width   int
}

// New creates an empty layout.
func New() *Layout {
	return &Layout{
		columns: make(map[string]int),
	}
}

// Add registers a key at a column. The first registration of a key wins;
// re-adding an existing key is ignored so that duplicate header labels
// cannot silently remap an earlier column.
func (l *Layout) Add(key string, column int) {
	if _, exists := l.columns[key]; exists {
		return
	}
	l.keys = append(l.keys, key)
	l.columns[key] = column
	if column > l.width {
		l.width = column
	}
}

// Column returns the 1-based column of a key and whether the key exists.
func (l *Layout) Column(key string) (int, bool) {
	col, ok := l.columns[key]
	return col, ok
}

// Has reports whether a key is registered.
func (l *Layout) Has(key string) bool {
	_, ok := l.columns[key]
	return ok
}

// Keys returns the logical keys in insertion order.
func (l *Layout) Keys() []string {
	out := make([]string, len(l.keys))
	copy(out, l.keys)
	return out
}

// Len returns the number of registered keys.
func (l *Layout) Len() int {
	return len(l.keys)
}

// Width returns the highest column position any key or span occupies.
// This is the row width a serialized grid needs.
func (l *Layout) Width() int {
	return l.width
}

// AddSpan records a grouping span. Spans widen the layout if they reach
// past the last keyed column.
func (l *Layout) AddSpan(span Span) {
	l.spans = append(l.spans, span)
	if span.End > l.width {
		l.width = span.End
	}
}

// Spans returns the grouping spans in recorded order.
func (l *Layout) Spans() []Span {
	out := make([]Span, len(l.spans))
	copy(out, l.spans)
	return out
}

// Categories returns the distinct category names that have at least one
// key in the layout, in insertion order. Identity and address keys are
// not categories.
func (l *Layout) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, key := range l.keys {
		switch key {
		case KeyHandle, KeyParzelle, KeyNumber, KeyAddress:
			continue
		}
		category, _ := ParseKey(key)
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}
	return out
}

// ParameterKeys returns the registered parameter keys of a category in
// slot order (parameter 1, parameter 2, …), stopping at the first gap.
func (l *Layout) ParameterKeys(category string) []string {
	var out []string
	for n := 1; ; n++ {
		key := ParameterKey(category, n)
		if !l.Has(key) {
			break
		}
		out = append(out, key)
	}
	return out
}
