// Package completion provides shared utilities for completion management.
package completion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/areatab/areatab/internal/cmd/constants"
	"github.com/areatab/areatab/internal/cmd/emoji"
	pkgconstants "github.com/areatab/areatab/pkg/constants"
)

// shellSpec describes where a shell's completion file lives and how to
// generate it.
type shellSpec struct {
	path     func() (string, error)
	generate func(cmd *cobra.Command, w io.Writer) error
}

func shellSpecFor(shell string) (shellSpec, bool) {
	switch shell {
	case constants.ShellBash:
		return shellSpec{
			path: GetBashPath,
			generate: func(cmd *cobra.Command, w io.Writer) error {
				return cmd.GenBashCompletion(w)
			},
		}, true
	case constants.ShellZsh:
		return shellSpec{
			path: GetZshPath,
			generate: func(cmd *cobra.Command, w io.Writer) error {
				return cmd.GenZshCompletion(w)
			},
		}, true
	case constants.ShellFish:
		return shellSpec{
			path: GetFishPath,
			generate: func(cmd *cobra.Command, w io.Writer) error {
				return cmd.GenFishCompletion(w, true)
			},
		}, true
	}
	return shellSpec{}, false
}

// Install installs completion files to appropriate system locations.
func Install(cmd *cobra.Command, shell string) error {
	spec, ok := shellSpecFor(shell)
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	fmt.Printf("Installing %s completions for areatab...\n", shell)

	targetPath, err := spec.path()
	if err != nil {
		return fmt.Errorf("failed to determine %s completion path: %w", shell, err)
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(targetPath), pkgconstants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}

	file, err := os.Create(targetPath) // #nosec G304 - Path comes from shellSpecFor() which generates controlled paths
	if err != nil {
		return fmt.Errorf("failed to create completion file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file: %v\n", closeErr)
		}
	}()

	if err = spec.generate(cmd, file); err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}

	fmt.Printf(emoji.Success+" %s completions installed to: %s\n", shell, targetPath)
	fmt.Printf("💡 Start a new shell session or reload your shell config to enable completions.\n")

	return nil
}

// Uninstall removes completion files from the same locations where Install puts them.
func Uninstall(shell string) error {
	spec, ok := shellSpecFor(shell)
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	fmt.Printf("Uninstalling %s completions for areatab...\n", shell)

	// Use the same path logic as installation
	targetPath, err := spec.path()
	if err != nil {
		return fmt.Errorf("failed to determine completion path: %w", err)
	}

	// Check if file exists and remove it
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		if err := os.Remove(targetPath); err != nil {
			// If we can't remove it (permission issue), provide manual instructions
			fmt.Printf(emoji.Error+" Could not remove: %s\n", targetPath)
			fmt.Printf("💡 Try manually: sudo rm -f %s\n", targetPath)
			return nil
		}
		fmt.Printf(emoji.Success+" Removed %s completions from: %s\n", shell, targetPath)
	} else {
		fmt.Printf(emoji.Info+" No %s completions found at: %s\n", shell, targetPath)

		// Also check other common locations as fallback
		removed := checkAndRemoveFromCommonPaths(shell)
		if !removed {
			fmt.Printf(emoji.Info + " No completion files found in common locations.\n")
		}
	}

	fmt.Printf("💡 Start a new shell session to ensure completions are fully removed.\n")
	return nil
}

// GetBashPath returns the appropriate bash completion path.
func GetBashPath() (string, error) {
	// Try Homebrew first (most common on macOS)
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "etc", "bash_completion.d", "areatab"), nil
	}

	// Fall back to user directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".bash_completion.d", "areatab"), nil
}

// GetZshPath returns the appropriate zsh completion path.
func GetZshPath() (string, error) {
	// Try Homebrew first
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "share", "zsh", "site-functions", "_areatab"), nil
	}

	// Fall back to user directory (less reliable for zsh)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".zsh", "completions", "_areatab"), nil
}

// GetFishPath returns the appropriate fish completion path.
func GetFishPath() (string, error) {
	// Try Homebrew first
	if prefix, ok := homebrewPrefix(); ok {
		return filepath.Join(prefix, "share", "fish", "vendor_completions.d", "areatab.fish"), nil
	}

	// Fall back to user directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "fish", "completions", "areatab.fish"), nil
}

// homebrewPrefix locates a Homebrew installation, preferring the
// HOMEBREW_PREFIX environment variable over well-known install paths.
func homebrewPrefix() (string, bool) {
	if prefix := os.Getenv("HOMEBREW_PREFIX"); prefix != "" {
		return prefix, true
	}
	for _, prefix := range []string{"/opt/homebrew", "/usr/local"} {
		if _, err := os.Stat(filepath.Join(prefix, "bin", "brew")); err == nil {
			return prefix, true
		}
	}
	return "", false
}

// checkAndRemoveFromCommonPaths checks and removes completion files from common fallback locations.
func checkAndRemoveFromCommonPaths(shell string) bool {
	var commonPaths []string
	homeDir, _ := os.UserHomeDir()

	switch shell {
	case constants.ShellBash:
		commonPaths = []string{
			"/etc/bash_completion.d/areatab",
			"/usr/local/etc/bash_completion.d/areatab",
			"/opt/homebrew/etc/bash_completion.d/areatab",
			"/usr/share/bash-completion/completions/areatab",
			filepath.Join(homeDir, ".bash_completion.d", "areatab"),
		}
	case constants.ShellZsh:
		commonPaths = []string{
			"/usr/local/share/zsh/site-functions/_areatab",
			"/opt/homebrew/share/zsh/site-functions/_areatab",
			filepath.Join(homeDir, ".zsh", "completions", "_areatab"),
		}
	case constants.ShellFish:
		commonPaths = []string{
			filepath.Join(homeDir, ".config", "fish", "completions", "areatab.fish"),
			"/usr/share/fish/completions/areatab.fish",
			"/usr/local/share/fish/completions/areatab.fish",
			"/opt/homebrew/share/fish/completions/areatab.fish",
			"/opt/homebrew/share/fish/vendor_completions.d/areatab.fish",
		}
	}

	removed := false
	for _, path := range commonPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if err := os.Remove(path); err == nil {
				fmt.Printf(emoji.Success+" Removed: %s\n", path)
				removed = true
			} else {
				fmt.Printf(emoji.Error+" Could not remove: %s (try: sudo rm %s)\n", path, path)
			}
		}
	}

	return removed
}
