package list

import (
	"testing"

	"github.com/areatab/areatab/internal/schema"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

func TestDescribeColumns(t *testing.T) {
	set, err := records.NewSetOf(&records.Table{
		Handle:   "K-101",
		Parzelle: "1024",
		Number:   "12",
		Items: []records.Item{
			{
				Name:     "Landerwerb",
				SubItems: []records.SubItem{{Name: "definitiv", Area: records.Area(120.5)}},
			},
			{
				Name:     "Temp. Nutzung",
				SubItems: []records.SubItem{{Name: "Baupiste"}, {Name: "Zufahrt"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("failed to build record set: %v", err)
	}

	s := schema.Default()
	columns := describeColumns(layout.Plan(set.List(), s), s)

	want := []columnInfo{
		{Column: 1, Header: "Handle"},
		{Column: 2, Header: "Parz."},
		{Column: 3, Header: "Enteig"},
		{Column: 4, Header: "Landerwerb", Block: "Landerwerb"},
		{Column: 5, SubHeader: "Art", Block: "Landerwerb"},
		{Column: 6, Header: "Temp. Nutzung", Block: "Temp. Nutzung"},
		{Column: 7, SubHeader: "parameter 1", Block: "Temp. Nutzung"},
		{Column: 8, Block: "Temp. Nutzung"},
		{Column: 9, SubHeader: "parameter 2", Block: "Temp. Nutzung"},
		{Column: 10, Header: "Address"},
	}

	if len(columns) != len(want) {
		t.Fatalf("describeColumns() returned %d columns, want %d", len(columns), len(want))
	}
	for i, col := range columns {
		if col != want[i] {
			t.Errorf("column %d = %+v, want %+v", i+1, col, want[i])
		}
	}
}

func TestDescribeColumns_EmptySnapshot(t *testing.T) {
	s := schema.Default()
	columns := describeColumns(layout.Plan(nil, s), s)

	// No categories: just the identity columns and the trailing address
	want := []columnInfo{
		{Column: 1, Header: "Handle"},
		{Column: 2, Header: "Parz."},
		{Column: 3, Header: "Enteig"},
		{Column: 4, Header: "Address"},
	}

	if len(columns) != len(want) {
		t.Fatalf("describeColumns() returned %d columns, want %d", len(columns), len(want))
	}
	for i, col := range columns {
		if col != want[i] {
			t.Errorf("column %d = %+v, want %+v", i+1, col, want[i])
		}
	}
}

func TestColumnsToData(t *testing.T) {
	data := columnsToData([]columnInfo{
		{Column: 1, Header: "Handle"},
		{Column: 5, SubHeader: "Art", Block: "Landerwerb"},
	})

	wantHeaders := []string{"Col", "Header", "Sub-Header", "Block"}
	if len(data.Headers) != len(wantHeaders) {
		t.Fatalf("Headers = %v, want %v", data.Headers, wantHeaders)
	}
	for i, h := range data.Headers {
		if h != wantHeaders[i] {
			t.Errorf("Headers[%d] = %s, want %s", i, h, wantHeaders[i])
		}
	}

	wantRows := [][]string{
		{"1", "Handle", "-", "-"},
		{"5", "-", "Art", "Landerwerb"},
	}
	if len(data.Rows) != len(wantRows) {
		t.Fatalf("Rows = %v, want %v", data.Rows, wantRows)
	}
	for i, row := range data.Rows {
		for j, cell := range row {
			if cell != wantRows[i][j] {
				t.Errorf("Rows[%d][%d] = %s, want %s", i, j, cell, wantRows[i][j])
			}
		}
	}
}
