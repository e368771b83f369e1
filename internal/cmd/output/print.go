package output

import (
	"os"

	"github.com/areatab/areatab/internal/cmd/constants"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/cmd/table"
	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/reconcile"
	"github.com/areatab/areatab/pkg/records"
)

// printTo writes raw to stdout in the selected format, converting
// through toData first for the tabular formats.
func printTo(globalFlags *globals.Flags, raw any, toData func() any) error {
	data := raw
	switch globalFlags.Output {
	case constants.FormatTable, constants.FormatWide, constants.FormatCSV, "":
		data = toData()
	}
	return NewFormatter(Format(globalFlags.Output)).Format(os.Stdout, data)
}

// FormatTables prints area tables in the selected output format.
func FormatTables(tables []*records.Table, globalFlags *globals.Flags) error {
	return printTo(globalFlags, tables, func() any {
		return table.TablesToData(tables, globalFlags.Output == constants.FormatWide)
	})
}

// FormatEntries prints one table's entries in the selected output format.
func FormatEntries(t *records.Table, globalFlags *globals.Flags) error {
	return printTo(globalFlags, t, func() any { return table.EntriesToData(t) })
}

// FormatChanges prints change instructions in the selected output format.
func FormatChanges(changes []reconcile.ChangeInstruction, globalFlags *globals.Flags) error {
	return printTo(globalFlags, changes, func() any { return table.ChangesToData(changes) })
}

// FormatDiagnostics prints diagnostics in the selected output format.
func FormatDiagnostics(diags diag.List, globalFlags *globals.Flags) error {
	return printTo(globalFlags, diags, func() any { return table.DiagnosticsToData(diags) })
}

// FormatAny prints data without a tabular conversion, for commands
// with custom structures.
func FormatAny(data any, globalFlags *globals.Flags) error {
	return NewFormatter(Format(globalFlags.Output)).Format(os.Stdout, data)
}
