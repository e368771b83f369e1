// Package constants holds the small shared vocabularies of the CLI:
// output format names and the shells completions support.
package constants

// Names accepted by the --output flag.
const (
	// FormatTable renders an aligned table, the default.
	FormatTable = "table"

	// FormatWide is the table format with the full column set.
	FormatWide = "wide"

	// FormatJSON renders JSON.
	FormatJSON = "json"

	// FormatYAML renders YAML.
	FormatYAML = "yaml"

	// FormatCSV renders a delimited sheet, one record per row.
	FormatCSV = "csv"
)
