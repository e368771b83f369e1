package app

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/cmd/application"
	"github.com/areatab/areatab/cmd/areatab/cmd/completion"
	"github.com/areatab/areatab/cmd/areatab/cmd/export"
	"github.com/areatab/areatab/cmd/areatab/cmd/list"
	"github.com/areatab/areatab/cmd/areatab/cmd/update"
	"github.com/areatab/areatab/cmd/areatab/cmd/validate"
)

// Ensure App satisfies the interface commands are written against.
var _ application.Application = (*App)(nil)

// CreateExportCommand builds the export command on this App.
func (a *App) CreateExportCommand() *cobra.Command {
	return export.NewCommand(a)
}

// CreateUpdateCommand builds the update command.
func (a *App) CreateUpdateCommand() *cobra.Command {
	return update.NewCommand(a)
}

// CreateListCommand builds the list command group.
func (a *App) CreateListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// CreateValidateCommand builds the validate command.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateCompletionCommand builds the completion command tree.
func (a *App) CreateCompletionCommand() *cobra.Command {
	return completion.NewCommand()
}

// CreateVersionCommand builds the version command. Verbose runs add
// the commit, build date, and builder.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("areatab %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
