package validate

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/cmdutil"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/schema"
	"github.com/areatab/areatab/pkg/grid"
	"github.com/areatab/areatab/pkg/layout"
)

// validateSheet reads a sheet file the way an update would and reports
// every recoverable problem it finds.
func validateSheet(cmd *cobra.Command, path, delimiter, schemaFile string) error {
	globalFlags := globals.Parse(cmd)
	steps := newProgress(globalFlags)

	var codecOpts []grid.Option
	if delimiter != "" {
		d, err := cmdutil.ParseDelimiter(delimiter)
		if err != nil {
			return err
		}
		codecOpts = append(codecOpts, grid.WithDelimiter(d))
	}

	s := schema.Default()
	if schemaFile != "" {
		var err error
		if s, err = schema.FromFile(schemaFile); err != nil {
			return err
		}
	}

	steps.start("Reading sheet file")
	g, err := grid.ReadFile(path, codecOpts...)
	if err != nil {
		steps.fail()
		return err
	}
	steps.ok("%d rows", g.NumRows())

	steps.start("Recovering column layout")
	l, err := layout.ReadHeader(g.Header(), s)
	if err != nil {
		steps.fail()
		return err
	}
	steps.ok("%d columns", l.Width())

	steps.start("Parsing data rows")
	parsed, diags, err := grid.Read(g, l)
	if err != nil {
		steps.fail()
		return err
	}
	steps.ok("%d tables, %d diagnostics", parsed.Len(), len(diags))

	steps.start("Checking record invariants")
	invariants := invariantDiagnostics(parsed)
	if len(invariants) > 0 {
		steps.fail()
	} else {
		steps.ok("clean")
	}
	diags = append(diags, invariants...)

	return report(cmd, diags, parsed.Len(), globalFlags)
}
