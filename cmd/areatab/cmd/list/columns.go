package list

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/constants"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/cmd/output"
	"github.com/areatab/areatab/internal/schema"
	"github.com/areatab/areatab/pkg/grid"
	"github.com/areatab/areatab/pkg/layout"
)

// columnInfo describes one sheet column of the planned layout.
type columnInfo struct {
	Column    int    `json:"column" yaml:"column"`
	Header    string `json:"header,omitempty" yaml:"header,omitempty"`
	SubHeader string `json:"sub_header,omitempty" yaml:"sub_header,omitempty"`
	Block     string `json:"block,omitempty" yaml:"block,omitempty"`
}

// NewColumnsCommand creates the list columns subcommand.
func NewColumnsCommand(app AppContext) *cobra.Command {
	var schemaFile string

	cmd := &cobra.Command{
		Use:     "columns",
		Short:   "Show the column layout an export would produce",
		Aliases: []string{"cols"},
		Args:    cobra.NoArgs,
		Long: `Columns prints the sheet layout planned over the current snapshot:
the two header rows and the category block each column belongs to.

The plan is derived from the records themselves, so adding an entry
under a new category changes the layout the next export uses.`,
		Example: `  areatab list columns                     # Planned layout
  areatab list columns -o json             # Machine-readable
  areatab list columns --schema alt.yaml   # Against a custom vocabulary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listColumns(app, cmd, schemaFile)
		},
	}

	cmd.Flags().StringVar(&schemaFile, "schema", "",
		"Schema file overriding the built-in vocabulary")

	return cmd
}

// listColumns plans the layout over the snapshot and prints one row per
// sheet column.
func listColumns(app AppContext, cmd *cobra.Command, schemaFile string) error {
	set, err := app.Tables()
	if err != nil {
		return err
	}

	s := schema.Default()
	if schemaFile != "" {
		if s, err = schema.FromFile(schemaFile); err != nil {
			return err
		}
	}

	columns := describeColumns(layout.Plan(set.List(), s), s)

	globalFlags := globals.Parse(cmd)
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatCSV, "":
		return output.FormatAny(columnsToData(columns), globalFlags)
	default:
		return output.FormatAny(columns, globalFlags)
	}
}

// describeColumns flattens the layout into per-column descriptions. The
// header cells come from an empty export so the view shows exactly what
// a sheet file would contain.
func describeColumns(l *layout.Layout, s layout.Schema) []columnInfo {
	hdr := grid.Write(nil, l, s).Header()
	spans := l.Spans()

	blockAt := func(col int) string {
		for _, span := range spans {
			if col >= span.Start && col <= span.End {
				return span.Label
			}
		}
		return ""
	}

	out := make([]columnInfo, 0, l.Width())
	for col := 1; col <= l.Width(); col++ {
		out = append(out, columnInfo{
			Column:    col,
			Header:    headerCell(hdr.Primary, col),
			SubHeader: headerCell(hdr.Secondary, col),
			Block:     blockAt(col),
		})
	}
	return out
}

// headerCell reads a 1-based cell from a header row, tolerating short rows.
func headerCell(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}

// columnsToData renders column descriptions as a display table.
func columnsToData(columns []columnInfo) output.Data {
	rows := make([][]string, 0, len(columns))
	for _, c := range columns {
		rows = append(rows, []string{
			strconv.Itoa(c.Column),
			orDash(c.Header),
			orDash(c.SubHeader),
			orDash(c.Block),
		})
	}
	return output.Data{
		Headers: []string{"Col", "Header", "Sub-Header", "Block"},
		Rows:    rows,
	}
}

// orDash substitutes a dash for empty display cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
