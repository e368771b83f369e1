package constants

// Shell names the completion commands accept. PowerShell is
// generate-only; the installer handles the other three.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// InstallableShells returns the shells whose rc files the completion
// installer knows how to edit.
func InstallableShells() []string {
	return []string{ShellBash, ShellZsh, ShellFish}
}
