package records

import (
	"strconv"
	"strings"

	"github.com/areatab/areatab/pkg/errors"
)

// ParseArea converts a cell's text into an optional area value.
// An empty or all-whitespace cell means "no measurement" and yields
// (nil, nil). A decimal comma is tolerated alongside the decimal point,
// as are thousands separators in the German style ("1.234,56").
// Anything unparsable yields an error and a nil value; callers must keep
// the area absent rather than fall back to zero.
func ParseArea(text string) (*float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil
	}

	s = strings.ReplaceAll(s, " ", "")
	if strings.Contains(s, ",") {
		// German notation: dots are grouping, the comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &errors.ValidationError{
			Field:   "area",
			Value:   text,
			Message: "not a number",
		}
	}
	return &v, nil
}

// FormatArea renders an optional area value for a grid cell.
// Absent values render as the empty string. Present values use fixed
// notation with a decimal point and no grouping separators, using the
// shortest digit string that round-trips through ParseArea.
func FormatArea(area *float64) string {
	if area == nil {
		return ""
	}
	return strconv.FormatFloat(*area, 'f', -1, 64)
}

// AreaEqual compares two optional areas: both absent is equal, absent
// versus present is not, and two present values compare by exact
// floating-point equality without tolerance.
func AreaEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
