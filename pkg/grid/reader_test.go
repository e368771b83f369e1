package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areatab/areatab/pkg/diag"
	pkgerrors "github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/grid"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

// sheet builds a grid from a header vocabulary and data rows, recovering
// the layout the way an import does.
func sheet(t *testing.T, rows [][]string) (*grid.Grid, *layout.Layout) {
	t.Helper()
	g := grid.FromRows(rows)
	l, err := layout.ReadHeader(g.Header(), layout.DefaultSchema())
	require.NoError(t, err)
	return g, l
}

func TestReadSingleAreaColumn(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Landerwerb", "Address"},
		{"", "", "", "", ""},
		{"A1", "443", "17", "120.5", "Hauptstr. 5"},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Equal(t, 1, set.Len())

	table, ok := set.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "443", table.Parzelle)
	assert.Equal(t, "17", table.Number)
	assert.Equal(t, "Hauptstr. 5", table.Address)
	require.Len(t, table.Items, 1)
	assert.Equal(t, "Landerwerb", table.Items[0].Name)
	require.NotNil(t, table.Items[0].Area)
	assert.Equal(t, 120.5, *table.Items[0].Area)
	assert.Empty(t, table.Items[0].SubItems)
}

func TestReadVariantPair(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Dienstbarkeit", "", "Address"},
		{"", "", "", "", "Art", ""},
		{"A1", "", "", "8.25", "Leitung", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)

	table, _ := set.Get("A1")
	require.Len(t, table.Items, 1)
	item := table.Items[0]
	assert.Equal(t, "Dienstbarkeit", item.Name)
	assert.Nil(t, item.Area)
	require.Len(t, item.SubItems, 1)
	assert.Equal(t, "Leitung", item.SubItems[0].Name)
	require.NotNil(t, item.SubItems[0].Area)
	assert.Equal(t, 8.25, *item.SubItems[0].Area)
}

func TestReadVariantLabelWithoutAreaYieldsNothing(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Dienstbarkeit", "", "Address"},
		{"", "", "", "", "Art", ""},
		{"A1", "", "", "", "Leitung", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)

	table, _ := set.Get("A1")
	assert.Empty(t, table.Items)
}

func TestReadParameterPairs(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "", "", "Address"},
		{"", "", "", "", "parameter 1", "", "parameter 2", ""},
		{"A2", "", "", "30", "Kiosk", "12.25", "Lager", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)

	table, _ := set.Get("A2")
	require.Len(t, table.Items, 1)
	item := table.Items[0]
	assert.Equal(t, "Temp. Nutzung", item.Name)
	assert.Nil(t, item.Area)
	require.Len(t, item.SubItems, 2)
	assert.Equal(t, "Kiosk", item.SubItems[0].Name)
	assert.Equal(t, 30.0, *item.SubItems[0].Area)
	assert.Equal(t, "Lager", item.SubItems[1].Name)
	assert.Equal(t, 12.25, *item.SubItems[1].Area)
}

func TestReadUnnamedParameterSlotSetsItemArea(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "", "", "Address"},
		{"", "", "", "", "parameter 1", "", "parameter 2", ""},
		{"A1", "", "", "7.5", "", "12", "Lager", ""},
	})

	set, _, err := grid.Read(g, l)
	require.NoError(t, err)

	table, _ := set.Get("A1")
	require.Len(t, table.Items, 1)
	item := table.Items[0]
	require.NotNil(t, item.Area)
	assert.Equal(t, 7.5, *item.Area)
	require.Len(t, item.SubItems, 1)
	assert.Equal(t, "Lager", item.SubItems[0].Name)
}

func TestReadNamedSlotWithEmptyAreaKeepsAreaAbsent(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "", "", "Address"},
		{"", "", "", "", "parameter 1", "", "parameter 2", ""},
		{"A1", "", "", "", "Kiosk", "", "", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)

	table, _ := set.Get("A1")
	require.Len(t, table.Items, 1)
	require.Len(t, table.Items[0].SubItems, 1)
	assert.Equal(t, "Kiosk", table.Items[0].SubItems[0].Name)
	assert.Nil(t, table.Items[0].SubItems[0].Area)
}

func TestReadSkipsEmptyHandleRows(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Landerwerb", "Address"},
		{"", "", "", "", ""},
		{"", "", "", "99", ""},
		{"A1", "", "", "1", ""},
		{"   ", "", "", "2", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, []string{"A1"}, set.Handles())
}

func TestReadUpperCasesHandles(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Address"},
		{"", "", "", ""},
		{"a1", "", "", ""},
	})

	set, _, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.True(t, set.Has("A1"))
}

func TestReadDuplicateHandleKeepsFirst(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Landerwerb", "Address"},
		{"", "", "", "", ""},
		{"A1", "", "", "1", ""},
		{"a1", "", "", "2", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	table, _ := set.Get("A1")
	assert.Equal(t, 1.0, *table.Items[0].Area)

	require.Len(t, diags, 1)
	assert.Equal(t, diag.KindDuplicateHandle, diags[0].Kind)
	assert.Equal(t, "A1", diags[0].Handle)
	assert.Equal(t, 4, diags[0].Row)
}

func TestReadDiscardsRowOnBadNumber(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Landerwerb", "Dienstbarkeit", "", "Address"},
		{"", "", "", "", "", "Art", ""},
		{"A1", "443", "17", "abc", "5", "Leitung", "Hauptstr. 5"},
		{"B2", "", "", "3", "", "", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)

	// The broken row contributes nothing, not even its good cells.
	assert.False(t, set.Has("A1"))
	assert.True(t, set.Has("B2"))

	require.Len(t, diags, 1)
	assert.Equal(t, diag.KindRowParse, diags[0].Kind)
	assert.Equal(t, 3, diags[0].Row)
	assert.Contains(t, diags[0].Message, "Landerwerb")
}

func TestReadReportsParameterSlotInDiagnostic(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "Address"},
		{"", "", "", "", "parameter 1", ""},
		{"A1", "", "", "x", "Kiosk", ""},
	})

	_, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "Temp. Nutzung parameter 1")
}

func TestReadRaggedRows(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Landerwerb", "Address"},
		{},
		{"A1", "443"},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)

	table, ok := set.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "443", table.Parzelle)
	assert.Equal(t, "", table.Number)
	assert.Empty(t, table.Items)
}

func TestReadRejectsLayoutWithoutMandatoryKeys(t *testing.T) {
	l := layout.New()
	l.Add(layout.KeyHandle, 1)

	_, _, err := grid.Read(grid.New(), l)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsStructural(err))
}

func TestReadGridWithoutDataRows(t *testing.T) {
	g, l := sheet(t, [][]string{
		{"Handle", "Parz.", "Enteig", "Address"},
		{"", "", "", ""},
	})

	set, diags, err := grid.Read(g, l)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, 0, set.Len())
}
