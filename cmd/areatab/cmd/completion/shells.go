package completion

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/constants"
	"github.com/areatab/areatab/internal/cmd/emoji"
)

// shellTask drives install and uninstall: it applies one operation to
// every selected shell and prints per-shell progress plus a summary.
// The message fields carry the verb; summary takes the shell count.
type shellTask struct {
	heading  string
	step     string
	failHead string
	summary  string
	hint     string
	errMsg   string
	apply    func(shell string) error
}

func (t shellTask) run(cmd *cobra.Command) error {
	fmt.Printf("%s\n\n", t.heading)

	var failures []string
	done := 0
	for _, shell := range selectedShells(cmd) {
		fmt.Printf(t.step+"\n", shell)
		if err := t.apply(shell); err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", shell, err))
		} else {
			done++
		}
		fmt.Println()
	}

	if len(failures) > 0 {
		fmt.Printf("%s %s\n", emoji.Error, t.failHead)
		for _, failure := range failures {
			fmt.Printf("  - %s\n", failure)
		}
		if done > 0 {
			fmt.Printf("\n%s %s\n", emoji.Success, fmt.Sprintf(t.summary, done))
		}
		return errors.New(t.errMsg)
	}

	fmt.Printf("🎉 %s!\n", fmt.Sprintf(t.summary, done))
	fmt.Printf("💡 %s\n", t.hint)
	return nil
}

// addShellFlags registers the per-shell selection flags.
func addShellFlags(cmd *cobra.Command, verb string) {
	for _, shell := range constants.InstallableShells() {
		cmd.Flags().Bool(shell, false, verb+" "+shell+" completions only")
	}
}

// selectedShells returns the shells picked by flags, defaulting to all
// supported shells when no flag is set.
func selectedShells(cmd *cobra.Command) []string {
	all := constants.InstallableShells()

	var picked []string
	for _, shell := range all {
		if flagBool(cmd, shell) {
			picked = append(picked, shell)
		}
	}
	if len(picked) == 0 {
		return all
	}
	return picked
}

// flagBool reads a bool flag registered by addShellFlags, so a lookup
// failure is a programming error.
func flagBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("flag " + name + ": " + err.Error())
	}
	return val
}
