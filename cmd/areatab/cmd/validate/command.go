// Package validate provides the validate command implementation.
package validate

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
	"github.com/areatab/areatab/internal/cmd/cmdutil"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var (
		delimiter  *string
		schemaFile string
	)

	cmd := &cobra.Command{
		Use:     "validate [sheet-file]",
		GroupID: "management",
		Short:   "Check a sheet file or the snapshot for problems",
		Args:    cobra.MaximumNArgs(1),
		Long: `Validate checks records for structural problems.

With a sheet file argument the file is read, its column layout is
recovered from the two header rows, and every data row is parsed the
way an update would parse it. Problems an update would skip with a
diagnostic are listed here; problems that would abort it outright
(an unreadable file, missing mandatory columns) fail immediately.

Without an argument the working snapshot itself is checked.`,
		Example: `  areatab validate                         # Check the snapshot
  areatab validate sheet.csv               # Check an edited sheet
  areatab validate -d ';' sheet.csv        # German Excel delimiter
  areatab validate sheet.csv -o json       # Diagnostics as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return validateSheet(cmd, args[0], *delimiter, schemaFile)
			}
			return validateSnapshot(app, cmd)
		},
	}

	delimiter = cmdutil.AddDelimiterFlag(cmd)
	cmd.Flags().StringVar(&schemaFile, "schema", "",
		"Schema file overriding the built-in vocabulary")

	return cmd
}
