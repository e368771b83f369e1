package records

import (
	"fmt"
	"strings"

	"github.com/areatab/areatab/pkg/constants"
	"github.com/areatab/areatab/pkg/errors"
)

// Validate checks the table's structural invariants: a non-empty handle
// within the length bound, non-empty item and sub-item names within
// theirs, and no name beginning with "-" (the sub-entry marker must
// have been stripped on the way in).
func (t *Table) Validate() error {
	handle := NormalizeHandle(t.Handle)
	if handle == "" {
		return &errors.ValidationError{Field: "handle", Message: "cannot be empty"}
	}
	if len(handle) > constants.MaxHandleLength {
		return &errors.ValidationError{
			Field:   "handle",
			Value:   handle,
			Message: fmt.Sprintf("longer than %d characters", constants.MaxHandleLength),
		}
	}
	for i, item := range t.Items {
		if err := validateName(item.Name, fmt.Sprintf("items[%d].name", i)); err != nil {
			return err
		}
		for j, sub := range item.SubItems {
			if err := validateName(sub.Name, fmt.Sprintf("items[%d].sub_items[%d].name", i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateName(name, field string) error {
	if strings.TrimSpace(name) == "" {
		return &errors.ValidationError{Field: field, Message: "cannot be empty"}
	}
	if strings.HasPrefix(name, "-") {
		return &errors.ValidationError{
			Field:   field,
			Value:   name,
			Message: "must not begin with the sub-entry marker",
		}
	}
	if len(name) > constants.MaxCategoryNameLength {
		return &errors.ValidationError{
			Field:   field,
			Value:   name,
			Message: fmt.Sprintf("longer than %d characters", constants.MaxCategoryNameLength),
		}
	}
	return nil
}

// ValidateSet validates every table in the set and returns all problems
// found, nil when the set is clean. Handle uniqueness is enforced by the
// Set itself, so only per-table invariants are checked here.
func ValidateSet(s *Set) []error {
	var errs []error
	s.ForEach(func(t *Table) bool {
		if err := t.Validate(); err != nil {
			errs = append(errs, errors.WrapResource("validate", "record", t.Handle, err))
		}
		return true
	})
	return errs
}
