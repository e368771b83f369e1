package completion

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/completion"
)

// NewInstallCommand creates the completion install subcommand.
func NewInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shell completions",
		Long: `Install shell completions for areatab.

By default, installs completions for all supported shells (bash, zsh, fish).
Use flags to install for specific shells only.

Examples:
  areatab completion install           # Install for all shells
  areatab completion install --bash    # Install for bash only
  areatab completion install --zsh     # Install for zsh only
  areatab completion install --fish    # Install for fish only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shellTask{
				heading:  "Installing shell completions...",
				step:     "🐚 Installing %s completions...",
				failHead: "Some installations failed:",
				summary:  "Successfully installed completions for %d shell(s)",
				hint:     "Start a new shell session or reload your shell config to enable completions.",
				errMsg:   "failed to install some completions",
				apply: func(shell string) error {
					return completion.Install(cmd.Root(), shell)
				},
			}.run(cmd)
		},
	}

	addShellFlags(cmd, "Install")

	return cmd
}
