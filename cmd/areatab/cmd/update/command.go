package update

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
)

// NewCommand creates the update command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags *Flags

	cmd := &cobra.Command{
		Use:     "update <sheet-file>",
		GroupID: "core",
		Short:   "Import an edited sheet and reconcile it",
		Args:    cobra.ExactArgs(1),
		Long: `Update reads an edited sheet back and reconciles it into the
working records.

The column layout is recovered from the sheet's own two header rows,
so columns may have been reordered or whole category blocks added
since the export. Matching is by handle after ordinance-number
normalization. Protected fields are never overwritten; attempts are
reported as diagnostics instead.

Changes are applied to the snapshot unless --dry-run or --no-save is
given. Rows that cannot be parsed are skipped with a diagnostic and
never abort the import.`,
		Example: `  areatab update sheet.csv                  # Import and save
  areatab update sheet.csv --dry-run        # Preview changes only
  areatab update -d ';' sheet.csv           # German Excel delimiter
  areatab update sheet.csv -o json          # Full result as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExecuteUpdate(app, cmd, args[0], flags)
		},
	}

	// Add update-specific flags
	flags = addUpdateFlags(cmd)

	return cmd
}
