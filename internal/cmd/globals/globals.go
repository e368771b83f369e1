// Package globals defines the persistent flags every areatab command
// shares and helpers for reading them back from the command tree.
package globals

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/constants"
)

// Flags holds the flag values shared across all commands.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags registers the shared flags on the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	// -o selects the format; file paths are positional arguments
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "",
		"Output format: table, json, yaml, wide, csv")
	// --format and --fmt are accepted spellings of --output
	cmd.PersistentFlags().StringVar(&flags.Output, "format", "", "")
	cmd.PersistentFlags().StringVar(&flags.Output, "fmt", "", "")
	_ = cmd.PersistentFlags().MarkHidden("format")
	_ = cmd.PersistentFlags().MarkHidden("fmt")

	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}

// Parse reads the shared flag values back from anywhere in the command
// tree, so subcommands don't need the struct threaded through every
// constructor. Flags that are not registered read as zero values.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	flags := &Flags{}
	flags.Output, _ = root.PersistentFlags().GetString("output")
	flags.Quiet, _ = root.PersistentFlags().GetBool("quiet")
	flags.Verbose, _ = root.PersistentFlags().GetBool("verbose")
	flags.NoColor, _ = root.PersistentFlags().GetBool("no-color")
	return flags
}

// Structured reports whether the selected format is machine-readable.
// Structured runs keep stdout parseable: progress lines and status
// alerts stay off it.
func (f *Flags) Structured() bool {
	switch f.Output {
	case constants.FormatJSON, constants.FormatYAML:
		return true
	}
	return false
}
