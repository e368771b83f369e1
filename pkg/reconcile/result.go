package reconcile

import (
	"fmt"
	"time"

	"github.com/areatab/areatab/pkg/diag"
)

// Stats summarizes one reconciliation run.
type Stats struct {
	TablesMatched   int           `json:"tables_matched" yaml:"tables_matched"`
	TablesUnmatched int           `json:"tables_unmatched" yaml:"tables_unmatched"`
	Changes         int           `json:"changes" yaml:"changes"`
	ReadonlySkips   int           `json:"readonly_skips" yaml:"readonly_skips"`
	Duration        time.Duration `json:"duration" yaml:"duration"`
}

// Result is the outcome of a reconciliation run: the change
// instructions for the host-document collaborator, the accumulated
// diagnostics, and run statistics. The ID correlates the run with
// host-side audit records and log lines.
type Result struct {
	ID          string              `json:"id" yaml:"id"`
	DryRun      bool                `json:"dry_run" yaml:"dry_run"`
	Changes     []ChangeInstruction `json:"changes" yaml:"changes"`
	Diagnostics diag.List           `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Stats       Stats               `json:"stats" yaml:"stats"`
}

// HasChanges reports whether any change instruction was emitted.
func (r *Result) HasChanges() bool {
	return len(r.Changes) > 0
}

// HasDiagnostics reports whether any diagnostic was accumulated.
func (r *Result) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// ChangesFor returns the change instructions of one table.
func (r *Result) ChangesFor(handle string) []ChangeInstruction {
	var out []ChangeInstruction
	for _, c := range r.Changes {
		if c.Handle == handle {
			out = append(out, c)
		}
	}
	return out
}

// Summary returns a one-line human-readable account of the run.
func (r *Result) Summary() string {
	prefix := "Reconciliation complete."
	if r.DryRun {
		prefix = "Dry run complete."
	}
	if !r.HasChanges() && !r.HasDiagnostics() {
		return fmt.Sprintf("%s No changes across %d matched tables.", prefix, r.Stats.TablesMatched)
	}
	return fmt.Sprintf("%s %d changes, %d diagnostics across %d matched tables (%d unmatched).",
		prefix, r.Stats.Changes, len(r.Diagnostics), r.Stats.TablesMatched, r.Stats.TablesUnmatched)
}
