// Package list provides commands for listing snapshot records.
package list

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/cmd/output"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/records"
)

// NewTablesCommand creates the list tables subcommand.
func NewTablesCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tables [handle]",
		Short:   "List area tables from the snapshot",
		Aliases: []string{"table"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  areatab list tables                      # List all tables
  areatab list tables K-102                # Show one table's entries
  areatab list tables --search 1024        # Match handle, parcel, or number
  areatab list tables -l 10                # First 10 tables only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Single table detail view
			if len(args) == 1 {
				return showTableEntries(app, cmd, args[0])
			}

			return listTables(app, cmd, globals.ParseList(cmd))
		},
	}

	globals.AddListFlags(cmd)

	return cmd
}

// listTables lists all tables with optional filters.
func listTables(app AppContext, cmd *cobra.Command, flags *globals.ListFlags) error {
	set, err := app.Tables()
	if err != nil {
		return err
	}

	tables := set.List()
	if flags.Search != "" {
		tables = filterTables(tables, flags.Search)
	}

	// Sort tables
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].Handle < tables[j].Handle
	})

	// Apply limit
	if flags.Limit > 0 && len(tables) > flags.Limit {
		tables = tables[:flags.Limit]
	}

	globalFlags := globals.Parse(cmd)
	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Found %d tables\n", len(tables))
	}

	return output.FormatTables(tables, globalFlags)
}

// showTableEntries shows the entries of a specific table.
func showTableEntries(app AppContext, cmd *cobra.Command, handle string) error {
	set, err := app.Tables()
	if err != nil {
		return err
	}

	t, ok := set.Get(handle)
	if !ok {
		// Suppress usage display for not found errors
		cmd.SilenceUsage = true
		return errors.NewNotFoundError("table", records.NormalizeHandle(handle))
	}

	return output.FormatEntries(t, globals.Parse(cmd))
}

// filterTables keeps the tables whose handle, parcel, or ordinance
// number contains the search term, ignoring case.
func filterTables(tables []*records.Table, search string) []*records.Table {
	needle := strings.ToLower(search)

	var out []*records.Table
	for _, t := range tables {
		if strings.Contains(strings.ToLower(t.Handle), needle) ||
			strings.Contains(strings.ToLower(t.Parzelle), needle) ||
			strings.Contains(strings.ToLower(t.Number), needle) {
			out = append(out, t)
		}
	}
	return out
}
