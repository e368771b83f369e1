package update

import (
	"os"

	"github.com/areatab/areatab/internal/cmd/alerts"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/cmd/output"
	"github.com/areatab/areatab/pkg/reconcile"
)

// printResult renders a reconciliation result in the requested format.
func printResult(result *reconcile.Result, globalFlags *globals.Flags) error {
	// Structured formats carry the whole result including stats
	if globalFlags.Structured() {
		return output.FormatAny(result, globalFlags)
	}

	if result.HasChanges() {
		if err := output.FormatChanges(result.Changes, globalFlags); err != nil {
			return err
		}
	}
	if result.HasDiagnostics() {
		if err := output.FormatDiagnostics(result.Diagnostics, globalFlags); err != nil {
			return err
		}
	}

	writer := alerts.StatusTo(os.Stderr, globalFlags.Quiet)
	if result.DryRun {
		if err := writer.WriteAlert(alerts.NewInfo("Dry run: nothing was applied or saved")); err != nil {
			return err
		}
	}
	return writer.WriteAlert(alerts.NewSuccess(result.Summary()))
}
