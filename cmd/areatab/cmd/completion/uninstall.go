package completion

import (
	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/completion"
)

// NewUninstallCommand creates the completion uninstall subcommand.
func NewUninstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove shell completions",
		Long: `Remove shell completions for areatab.

By default, removes completions for all supported shells (bash, zsh, fish).
Use flags to remove from specific shells only.

Examples:
  areatab completion uninstall           # Remove from all shells
  areatab completion uninstall --bash    # Remove from bash only
  areatab completion uninstall --zsh     # Remove from zsh only
  areatab completion uninstall --fish    # Remove from fish only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shellTask{
				heading:  "Uninstalling shell completions...",
				step:     "🗑️  Removing %s completions...",
				failHead: "Some removals failed:",
				summary:  "Successfully removed completions from %d shell(s)",
				hint:     "Start a new shell session to ensure completions are fully removed.",
				errMsg:   "failed to remove some completions",
				apply:    completion.Uninstall,
			}.run(cmd)
		},
	}

	addShellFlags(cmd, "Remove")

	return cmd
}
