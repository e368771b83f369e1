package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/pkg/records"
)

// AppContext is the slice of the application the list subcommands
// consume: the working set and a logger. Tests satisfy it with a stub
// instead of building a full App.
type AppContext interface {
	Tables() (*records.Set, error)
	Logger() *zerolog.Logger
}

// NewCommand builds the list command group.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List records from the working snapshot",
		Long: `List displays records from the working snapshot.

Available subcommands:
  tables      - Area tables with entry counts and area totals
  columns     - The column layout an export would produce`,
		Example: `  areatab list tables                      # List all tables
  areatab list tables K-102                # Show one table's entries
  areatab list tables --search Weide       # Filter by handle, parcel, or number
  areatab list columns                     # Show the planned sheet columns`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	cmd.AddCommand(NewTablesCommand(app), NewColumnsCommand(app))

	return cmd
}
