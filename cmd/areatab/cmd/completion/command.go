// Package completion provides the shell completion management commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// NewCommand builds the completion command tree: per-shell script
// generation to stdout plus install/uninstall management. It replaces
// Cobra's auto-generated completion command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "completion",
		GroupID: "management",
		Short:   "Manage shell completions",
		Long: `Manage shell completions for areatab.

Completion scripts can be written to stdout for manual setup, or
placed where the shell finds them with the install and uninstall
subcommands.

Examples:
  # Generate bash completion to stdout
  areatab completion bash

  # Install completions for every detected shell
  areatab completion install

  # Install for one shell
  areatab completion install --bash

  # Remove installed completions
  areatab completion uninstall`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	for _, g := range generators {
		cmd.AddCommand(newGenerateCommand(g))
	}
	cmd.AddCommand(NewInstallCommand())
	cmd.AddCommand(NewUninstallCommand())

	return cmd
}

// generator describes one shell's script generation subcommand.
type generator struct {
	shell string
	setup string
	gen   func(root *cobra.Command, w io.Writer) error
}

var generators = []generator{
	{
		shell: "bash",
		setup: `To load completions in your current shell session:

  source <(areatab completion bash)

To load completions for every new session, execute once:

  # Linux:
  areatab completion bash > /etc/bash_completion.d/areatab

  # macOS:
  areatab completion bash > $(brew --prefix)/etc/bash_completion.d/areatab

"areatab completion install" does this for you.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		shell: "zsh",
		setup: `To load completions in your current shell session:

  source <(areatab completion zsh)

To load completions for every new session, execute once:

  areatab completion zsh > "${fpath[1]}/_areatab"

You will need to start a new shell for this setup to take effect.

"areatab completion install" does this for you.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		shell: "fish",
		setup: `To load completions in your current shell session:

  areatab completion fish | source

To load completions for every new session, execute once:

  areatab completion fish > ~/.config/fish/completions/areatab.fish

You will need to start a new shell for this setup to take effect.

"areatab completion install" does this for you.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		shell: "powershell",
		setup: `To load completions in your current shell session:

  areatab completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the above
command to your powershell profile.`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

func newGenerateCommand(g generator) *cobra.Command {
	return &cobra.Command{
		Use:                   g.shell,
		Short:                 "Generate " + g.shell + " completion script",
		Long:                  "Generate the autocompletion script for " + g.shell + ".\n\n" + g.setup,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
