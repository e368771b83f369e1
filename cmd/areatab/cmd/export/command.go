// Package export provides the sheet export command.
package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
	"github.com/areatab/areatab/internal/cmd/alerts"
	"github.com/areatab/areatab/internal/cmd/cmdutil"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/pkg/grid"
)

// NewCommand creates the export command.
func NewCommand(app application.Application) *cobra.Command {
	var delimiter *string

	cmd := &cobra.Command{
		Use:     "export [sheet-file]",
		GroupID: "core",
		Short:   "Write the working records as a delimited sheet",
		Long: `Export projects the working records into a flat sheet.

The column layout is derived from the records themselves: identity
columns first, then one column block per area category in the order
categories are first encountered, and the owner address last. Two
header rows describe the layout so an edited sheet can be read back
without any external schema.

Without a file argument the sheet is written to stdout.`,
		Example: `  areatab export                       # Write CSV to stdout
  areatab export tables.csv            # Write to a file
  areatab export -d ';' tables.csv     # German Excel delimiter
  areatab export -d tab tables.tsv     # Tab-separated`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExport(app, cmd, args, *delimiter)
		},
	}

	delimiter = cmdutil.AddDelimiterFlag(cmd)

	return cmd
}

// executeExport plans the sheet and writes it to the requested
// destination.
func executeExport(app application.Application, cmd *cobra.Command, args []string, delimiter string) error {
	c, err := app.Client()
	if err != nil {
		return err
	}

	g, err := c.Export()
	if err != nil {
		return err
	}

	var codecOpts []grid.Option
	if delimiter != "" {
		d, err := cmdutil.ParseDelimiter(delimiter)
		if err != nil {
			return err
		}
		codecOpts = append(codecOpts, grid.WithDelimiter(d))
	}

	// Without a destination the sheet goes to stdout
	if len(args) == 0 {
		return grid.Encode(os.Stdout, g, codecOpts...)
	}

	path := args[0]
	if delimiter == "" {
		// No override: the client writes with its configured delimiter
		if err := c.ExportTo(path); err != nil {
			return err
		}
	} else if err := grid.WriteFile(path, g, codecOpts...); err != nil {
		return err
	}

	globalFlags := globals.Parse(cmd)
	writer := alerts.StatusTo(os.Stderr, globalFlags.Quiet)
	alert := alerts.NewSuccess(fmt.Sprintf("Exported %d tables to %s", c.Tables().Len(), path))
	return writer.WriteAlert(alert)
}
