package update

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
	"github.com/areatab/areatab/internal/cmd/globals"
)

// ExecuteUpdate orchestrates the complete import process.
func ExecuteUpdate(app application.Application, cmd *cobra.Command, path string, flags *Flags) error {
	globalFlags := globals.Parse(cmd)

	// Build a client from the app configuration plus command flags
	opts, err := BuildClientOptions(flags)
	if err != nil {
		return err
	}
	c, err := app.Client(opts...)
	if err != nil {
		return err
	}

	result, err := c.ImportFile(path)
	if err != nil {
		return err
	}

	if err := printResult(result, globalFlags); err != nil {
		return err
	}

	// Dry runs and --no-save leave the snapshot untouched
	if flags.DryRun || flags.NoSave {
		return nil
	}

	return c.Save()
}
