package validate

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
	"github.com/areatab/areatab/internal/cmd/globals"
)

// validateSnapshot checks the working snapshot's record invariants.
func validateSnapshot(app application.Application, cmd *cobra.Command) error {
	globalFlags := globals.Parse(cmd)
	steps := newProgress(globalFlags)

	steps.start("Loading snapshot")
	set, err := app.Tables()
	if err != nil {
		steps.fail()
		return err
	}
	steps.ok("%d tables", set.Len())

	steps.start("Checking record invariants")
	diags := invariantDiagnostics(set)
	if len(diags) > 0 {
		steps.fail()
	} else {
		steps.ok("clean")
	}

	return report(cmd, diags, set.Len(), globalFlags)
}
