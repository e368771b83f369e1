// Package reconcile merges a freshly imported record set into the
// current one. Matching is by handle; matched tables are compared field
// by field and updated in place, emitting one change instruction per
// applied update. Fields flagged read-only are never overwritten; a
// differing import for them is reported as a diagnostic instead.
// Imported tables with no current counterpart are reported and
// otherwise ignored: reconciliation never creates or deletes tables.
package reconcile

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/records"
)

// Reconciler merges imported records into current records.
type Reconciler interface {
	// Reconcile compares every imported table against its current
	// counterpart and applies the differences to the current set,
	// unless the reconciler runs dry. Failures are local: one field's
	// outcome never aborts the remaining fields, items, or tables.
	Reconcile(current, imported *records.Set) (*Result, error)
}

// reconciler is the default Reconciler implementation.
type reconciler struct {
	dryRun bool
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// WithDryRun makes the reconciler compute change instructions and
// diagnostics without touching the current record set.
func WithDryRun(dryRun bool) Option {
	return func(r *reconciler) error {
		r.dryRun = dryRun
		return nil
	}
}

// New creates a Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(current, imported *records.Set) (*Result, error) {
	if current == nil || imported == nil {
		return nil, errors.NewValidationError("records", nil, "current and imported record sets are required")
	}

	start := time.Now()
	result := &Result{
		ID:     uuid.New().String(),
		DryRun: r.dryRun,
	}

	for _, imp := range imported.List() {
		cur, ok := current.Get(imp.Handle)
		if !ok {
			result.Stats.TablesUnmatched++
			result.Diagnostics = append(result.Diagnostics, diag.NewUnmatchedHandle(imp.Handle))
			continue
		}
		result.Stats.TablesMatched++
		r.reconcileTable(result, cur, imp)
	}

	result.Stats.Changes = len(result.Changes)
	result.Stats.Duration = time.Since(start)
	return result, nil
}

// reconcileTable compares one matched pair and updates the current
// table in place. Number and parzelle compare as trimmed strings and
// are overwritten unconditionally; the address compares in its
// canonical single-line form and is written back with line breaks
// restored; items and sub-items follow the per-area rules below.
func (r *reconciler) reconcileTable(result *Result, cur, imp *records.Table) {
	if number := strings.TrimSpace(imp.Number); number != strings.TrimSpace(cur.Number) {
		result.Changes = append(result.Changes, ChangeInstruction{
			Handle: cur.Handle, Path: PathNumber, Old: cur.Number, New: number,
		})
		if !r.dryRun {
			cur.Number = number
		}
	}
	if parzelle := strings.TrimSpace(imp.Parzelle); parzelle != strings.TrimSpace(cur.Parzelle) {
		result.Changes = append(result.Changes, ChangeInstruction{
			Handle: cur.Handle, Path: PathParzelle, Old: cur.Parzelle, New: parzelle,
		})
		if !r.dryRun {
			cur.Parzelle = parzelle
		}
	}
	if records.CanonicalAddress(imp.Address) != records.CanonicalAddress(cur.Address) {
		restored := records.RestoreAddress(imp.Address)
		result.Changes = append(result.Changes, ChangeInstruction{
			Handle: cur.Handle, Path: PathAddress, Old: cur.Address, New: restored,
		})
		if !r.dryRun {
			cur.Address = restored
		}
	}

	for i := range imp.Items {
		r.reconcileItem(result, cur, &imp.Items[i])
	}
}

// reconcileItem merges one imported item into its name match on the
// current table. An imported item without a counterpart is left alone,
// except that one carrying sub-items is reported: its sub-entries have
// no parent to attach to. Sub-items merge by name under the matched
// parent; those present on only one side are untouched.
func (r *reconciler) reconcileItem(result *Result, cur *records.Table, imp *records.Item) {
	curItem, ok := cur.Item(imp.Name)
	if !ok {
		if len(imp.SubItems) > 0 {
			result.Diagnostics = append(result.Diagnostics,
				diag.NewUnmatchedParent(cur.Handle, ItemPath(imp.Name)))
		}
		return
	}

	r.reconcileArea(result, cur.Handle, ItemAreaPath(imp.Name), &curItem.Area, imp.Area, curItem.Readonly)

	for j := range imp.SubItems {
		impSub := &imp.SubItems[j]
		curSub, ok := curItem.SubItem(impSub.Name)
		if !ok {
			continue
		}
		r.reconcileArea(result, cur.Handle, SubItemAreaPath(imp.Name, impSub.Name),
			&curSub.Area, impSub.Area, curSub.Readonly)
	}
}

// reconcileArea applies the three-way area rule to one field: both
// absent is equal, absent versus present differs, present values
// compare exactly. A differing read-only field keeps its value and
// yields a diagnostic instead of an instruction.
func (r *reconciler) reconcileArea(result *Result, handle, path string, target **float64, imported *float64, readonly bool) {
	if records.AreaEqual(*target, imported) {
		return
	}
	if readonly {
		result.Stats.ReadonlySkips++
		result.Diagnostics = append(result.Diagnostics, diag.NewReadOnlySkip(handle, path))
		return
	}
	result.Changes = append(result.Changes, ChangeInstruction{
		Handle: handle,
		Path:   path,
		Old:    records.FormatArea(*target),
		New:    records.FormatArea(imported),
	})
	if r.dryRun {
		return
	}
	if imported == nil {
		*target = nil
		return
	}
	*target = records.Area(*imported)
}
