// Package emoji defines the status symbols the CLI prints in front of
// human-readable lines.
package emoji

// One symbol per outcome, shared by every command, so an applied change
// or a skipped cell looks the same in a validation report and an import
// summary.
const (
	// Success marks applied changes, clean validations, completed installs.
	Success = "✓"

	// Error marks failed reads, malformed sheets, rejected rows.
	Error = "✗"

	// Warning marks recoverable diagnostics such as readonly skips.
	Warning = "!"

	// Optional marks absent values: empty area cells, fields without data.
	Optional = "-"

	// Unknown marks states nothing else covers, such as an unrecognized
	// diagnostic kind.
	Unknown = "?"

	// Info marks neutral informational lines.
	Info = "i"
)
