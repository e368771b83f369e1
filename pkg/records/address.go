package records

import "strings"

// CanonicalAddress collapses a stored multi-line address into the
// single-line form used in grid cells and in comparisons: line breaks
// become ", " and surrounding whitespace is dropped per line. Empty
// lines vanish. Address equality is always decided on this form.
func CanonicalAddress(address string) string {
	lines := splitAddress(address, func(r rune) bool { return r == '\n' || r == '\r' })
	return strings.Join(lines, ", ")
}

// RestoreAddress converts a single-line address back to the stored
// multi-line form: comma separators become line breaks. Applying it to
// an already multi-line address first canonicalizes, so the result is
// stable.
func RestoreAddress(address string) string {
	lines := splitAddress(CanonicalAddress(address), func(r rune) bool { return r == ',' })
	return strings.Join(lines, "\n")
}

// splitAddress splits on the separator, trims each part, and drops empties.
func splitAddress(s string, sep func(rune) bool) []string {
	parts := strings.FieldsFunc(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
