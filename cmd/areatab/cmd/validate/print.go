package validate

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/alerts"
	"github.com/areatab/areatab/internal/cmd/emoji"
	"github.com/areatab/areatab/internal/cmd/globals"
	"github.com/areatab/areatab/internal/cmd/output"
	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/records"
)

// progress prints step lines to stderr during table-format runs and
// stays silent for quiet or structured output.
type progress struct {
	enabled bool
}

func newProgress(globalFlags *globals.Flags) *progress {
	if globalFlags.Structured() {
		return &progress{}
	}
	return &progress{enabled: !globalFlags.Quiet}
}

func (p *progress) start(step string) {
	if p.enabled {
		fmt.Fprintf(os.Stderr, "%s... ", step)
	}
}

func (p *progress) ok(format string, args ...any) {
	if p.enabled {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.Success, fmt.Sprintf(format, args...))
	}
}

func (p *progress) fail() {
	if p.enabled {
		fmt.Fprintf(os.Stderr, "%s failed\n", emoji.Error)
	}
}

// invariantDiagnostics converts record invariant violations into
// field-error diagnostics so sheet parse problems and record problems
// land in one list.
func invariantDiagnostics(set *records.Set) diag.List {
	var out diag.List
	for _, err := range records.ValidateSet(set) {
		var handle string
		var resErr *errors.ResourceError
		if stderrors.As(err, &resErr) {
			handle = resErr.ID
		}

		var valErr *errors.ValidationError
		if stderrors.As(err, &valErr) {
			out = append(out, diag.NewFieldError(handle, valErr.Field, valErr.Message))
			continue
		}
		out = append(out, diag.NewFieldError(handle, "", err.Error()))
	}
	return out
}

// report renders the collected diagnostics and decides the exit status.
func report(cmd *cobra.Command, diags diag.List, tables int, globalFlags *globals.Flags) error {
	switch {
	case globalFlags.Structured():
		// Structured output always carries the list, empty included
		if diags == nil {
			diags = diag.List{}
		}
		if err := output.FormatDiagnostics(diags, globalFlags); err != nil {
			return err
		}
	case len(diags) > 0:
		if err := output.FormatDiagnostics(diags, globalFlags); err != nil {
			return err
		}
	default:
		writer := alerts.StatusTo(os.Stderr, globalFlags.Quiet)
		msg := fmt.Sprintf("%d tables checked, no problems found", tables)
		if err := writer.WriteAlert(alerts.NewSuccess(msg)); err != nil {
			return err
		}
	}

	if len(diags) == 0 {
		return nil
	}

	// A failed check must be visible in the exit code
	cmd.SilenceUsage = true
	return fmt.Errorf("validation found %d problems", len(diags))
}
