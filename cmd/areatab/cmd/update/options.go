// Package update provides the update command implementation.
package update

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab"
	"github.com/areatab/areatab/internal/cmd/cmdutil"
)

// Flags holds the update-specific command flags.
type Flags struct {
	DryRun    bool
	NoSave    bool
	Delimiter *string
}

// addUpdateFlags registers the update-specific flags on the command.
func addUpdateFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Preview changes without applying them")
	cmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Reconcile in memory but skip the snapshot write")
	flags.Delimiter = cmdutil.AddDelimiterFlag(cmd)
	return flags
}

// BuildClientOptions converts the parsed flags into client options.
// The app layers these on top of its configured options, so a flag
// only has to name what it overrides.
func BuildClientOptions(flags *Flags) ([]areatab.Option, error) {
	var opts []areatab.Option

	if flags.DryRun {
		opts = append(opts, areatab.WithDryRun(true))
	}
	if d := *flags.Delimiter; d != "" {
		r, err := cmdutil.ParseDelimiter(d)
		if err != nil {
			return nil, err
		}
		opts = append(opts, areatab.WithDelimiter(r))
	}

	return opts, nil
}
