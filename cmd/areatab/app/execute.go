package app

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/globals"
)

// Execute runs the CLI with the given arguments. main hands it the
// process context and os.Args[1:].
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "areatab",
		Short:   "Area table reconciliation CLI",
		Version: a.version,
		Long: `Areatab keeps a local set of area tables in sync with the delimited
sheets that circulate for review.

It holds the working records in a local snapshot, exports them as a flat
sheet whose column layout is derived from the records themselves, and
reads edited sheets back in. Instead of overwriting blindly, an import
reconciles the sheet against the snapshot field by field, producing
change instructions and diagnostics; protected fields are never
overwritten.`,
		PersistentPreRunE: a.applyFlags,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "management", Title: "Management Commands:"},
	)

	globals.AddFlags(root)
	root.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.areatab.yaml)")
	root.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Keep --version output in step with the version subcommand.
	root.SetVersionTemplate("areatab {{.Version}}\n")

	root.AddCommand(
		a.CreateExportCommand(),
		a.CreateUpdateCommand(),
		a.CreateListCommand(),
		a.CreateValidateCommand(),
		a.CreateCompletionCommand(),
		a.CreateVersionCommand(),
	)

	return root
}

// applyFlags runs before every command. It folds the parsed global
// flags into the configuration and rebuilds the logger so flag values
// win over config file and environment. An explicit --config file is
// loaded first; unlike the implicit search, it must be readable.
func (a *App) applyFlags(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfigFile(flagString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}

	flags := globals.Parse(cmd)
	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Output, flagString(cmd, "log-level"))

	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError prints err to stderr and exits with status 1. main calls
// it for errors that survive Execute.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// flagString reads a string flag registered in rootCommand, so a
// lookup failure is a programming error.
func flagString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("flag " + name + ": " + err.Error())
	}
	return val
}
