// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/areatab/areatab/internal/cmd/emoji"
	"github.com/areatab/areatab/pkg/diag"
	"github.com/areatab/areatab/pkg/reconcile"
	"github.com/areatab/areatab/pkg/records"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// TablesToData converts area tables to list rows.
// The wide view appends sub-entry counts and the owner address.
func TablesToData(tables []*records.Table, wide bool) Data {
	headers := []string{"Handle", "Enteig", "Parz.", "Entries", "Area"}
	alignment := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Sub-Entries", "Address")
		alignment = append(alignment, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(tables))
	for _, t := range tables {
		entries, subs := countEntries(t)
		row := []string{
			t.Handle,
			orDash(t.Number),
			orDash(t.Parzelle),
			strconv.Itoa(entries),
			FormatAreaCell(totalArea(t)),
		}
		if wide {
			row = append(row,
				strconv.Itoa(subs),
				orDash(records.CanonicalAddress(t.Address)),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// EntriesToData converts a single table into per-entry rows for the
// detail view. Sub-entries follow their parent, indented the way the
// sheet lists them.
func EntriesToData(t *records.Table) Data {
	headers := []string{"Entry", "Area", "Protected"}
	alignment := []Align{AlignLeft, AlignRight, AlignCenter}

	var rows [][]string
	for _, it := range t.Items {
		rows = append(rows, []string{it.Name, FormatAreaCell(it.Area), protectedMark(it.Readonly)})
		for _, sub := range it.SubItems {
			rows = append(rows, []string{"  - " + sub.Name, FormatAreaCell(sub.Area), protectedMark(sub.Readonly)})
		}
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: alignment}
}

// ChangesToData converts change instructions to rows.
func ChangesToData(changes []reconcile.ChangeInstruction) Data {
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{c.Handle, c.Path, cell(c.Old), cell(c.New)})
	}

	return Data{
		Headers: []string{"Handle", "Field", "Old", "New"},
		Rows:    rows,
	}
}

// DiagnosticsToData converts reader and reconciliation diagnostics to rows.
func DiagnosticsToData(diags diag.List) Data {
	rows := make([][]string, 0, len(diags))
	for _, d := range diags {
		rows = append(rows, []string{
			string(d.Kind),
			orDash(d.Handle),
			formatRowRef(d.Row),
			orDash(d.Path),
			d.Message,
		})
	}

	return Data{
		Headers:         []string{"Kind", "Handle", "Row", "Path", "Message"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignLeft},
		Rows:            rows,
	}
}

// FormatAreaCell renders an optional area value for display.
// Absent areas show a dash rather than an empty cell.
func FormatAreaCell(area *float64) string {
	if area == nil {
		return emoji.Optional
	}
	return records.FormatArea(area)
}

// countEntries returns the number of entries and sub-entries of a table.
func countEntries(t *records.Table) (entries, subs int) {
	entries = len(t.Items)
	for _, it := range t.Items {
		subs += len(it.SubItems)
	}
	return entries, subs
}

// totalArea sums all measured areas of a table, entries and
// sub-entries alike. Returns nil when nothing carries an area.
func totalArea(t *records.Table) *float64 {
	var sum float64
	found := false
	for _, it := range t.Items {
		if it.HasArea() {
			sum += *it.Area
			found = true
		}
		for _, sub := range it.SubItems {
			if sub.HasArea() {
				sum += *sub.Area
				found = true
			}
		}
	}
	if !found {
		return nil
	}
	return &sum
}

// formatRowRef renders a 1-based sheet row reference.
// Diagnostics without a row position show a dash.
func formatRowRef(row int) string {
	if row <= 0 {
		return emoji.Optional
	}
	return strconv.Itoa(row)
}

func protectedMark(readonly bool) string {
	if readonly {
		return emoji.Success
	}
	return ""
}

func orDash(s string) string {
	if s == "" {
		return emoji.Optional
	}
	return s
}

func cell(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
