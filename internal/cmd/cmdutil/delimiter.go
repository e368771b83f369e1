// Package cmdutil provides small helpers shared by CLI commands.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ParseDelimiter converts a delimiter flag value to a rune.
// Accepts a single character or the word "tab".
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("delimiter cannot be empty")
	}
	if strings.EqualFold(s, "tab") || s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character or 'tab'", s)
	}
	return runes[0], nil
}

// AddDelimiterFlag registers the shared delimiter flag on a command and
// returns a pointer to its value.
func AddDelimiterFlag(cmd *cobra.Command) *string {
	var delimiter string
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "",
		"Cell delimiter: a single character or 'tab' (default from configuration, ',')")
	return &delimiter
}
