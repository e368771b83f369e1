package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

func TestReadHeaderIdentityOnly(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "Parz.", "Enteig", "Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 1, mustColumn(t, l, layout.KeyHandle))
	assert.Equal(t, 2, mustColumn(t, l, layout.KeyParzelle))
	assert.Equal(t, 3, mustColumn(t, l, layout.KeyNumber))
	assert.Equal(t, 4, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderFullVocabulary(t *testing.T) {
	// Landerwerb plain at 4, Dienstbarkeit pair at 5-6,
	// Temp. Nutzung pairs at 7-10, Address at 11.
	rows := layout.HeaderRows{
		Primary: []string{
			"Handle", "Parz.", "Enteig",
			"Landerwerb",
			"Dienstbarkeit", "",
			"Temp. Nutzung", "", "", "",
			"Address",
		},
		Secondary: []string{
			"", "", "",
			"",
			"", "Art",
			"", "parameter 1", "", "parameter 2",
			"",
		},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 4, mustColumn(t, l, "Landerwerb"))
	assert.False(t, l.Has(layout.VariantKey("Landerwerb")))

	assert.Equal(t, 5, mustColumn(t, l, "Dienstbarkeit"))
	assert.Equal(t, 6, mustColumn(t, l, layout.VariantKey("Dienstbarkeit")))

	assert.Equal(t, 8, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 1)))
	assert.Equal(t, 10, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 2)))
	assert.False(t, l.Has("Temp. Nutzung"))

	assert.Equal(t, 11, mustColumn(t, l, layout.KeyAddress))

	assert.Equal(t, []layout.Span{
		{Label: "Dienstbarkeit", Start: 5, End: 6},
		{Label: "Temp. Nutzung", Start: 7, End: 10},
	}, l.Spans())
}

func TestReadHeaderRecoversPlannedLayout(t *testing.T) {
	tables := []*records.Table{{
		Handle:   "A2",
		Number:   "240",
		Parzelle: "991",
		Items: []records.Item{
			{Name: "Landerwerb", Area: records.Area(120.5)},
			{
				Name: "Temp. Nutzung",
				SubItems: []records.SubItem{
					{Name: "Kiosk", Area: records.Area(30)},
					{Name: "Lager", Area: records.Area(12.25)},
				},
			},
		},
	}}
	schema := layout.DefaultSchema()
	planned := layout.Plan(tables, schema)

	// Render the header region the way an export does: primary labels at
	// each block's first column, secondary labels over pair name columns.
	width := planned.Width()
	primary := make([]string, width)
	secondary := make([]string, width)
	primary[0] = schema.HandleLabel
	primary[1] = schema.ParzelleLabel
	primary[2] = schema.NumberLabel
	addrCol, _ := planned.Column(layout.KeyAddress)
	primary[addrCol-1] = schema.AddressLabel
	if col, ok := planned.Column("Landerwerb"); ok {
		primary[col-1] = "Landerwerb"
	}
	for _, span := range planned.Spans() {
		primary[span.Start-1] = span.Label
	}
	for _, key := range planned.ParameterKeys("Temp. Nutzung") {
		col, _ := planned.Column(key)
		_, qualifier := layout.ParseKey(key)
		secondary[col-1] = qualifier
	}

	recovered, err := layout.ReadHeader(layout.HeaderRows{Primary: primary, Secondary: secondary}, schema)
	require.NoError(t, err)

	assert.Equal(t, planned.Keys(), recovered.Keys())
	for _, key := range planned.Keys() {
		want, _ := planned.Column(key)
		got, ok := recovered.Column(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	assert.Equal(t, planned.Spans(), recovered.Spans())
}

func TestReadHeaderCaseInsensitiveLabels(t *testing.T) {
	rows := layout.HeaderRows{
		Primary:   []string{"HANDLE", "parz.", "ENTEIG", "dienstbarkeit", "", "address"},
		Secondary: []string{"", "", "", "", "ART", ""},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 1, mustColumn(t, l, layout.KeyHandle))
	assert.Equal(t, 4, mustColumn(t, l, "Dienstbarkeit"))
	assert.Equal(t, 5, mustColumn(t, l, layout.VariantKey("Dienstbarkeit")))
	assert.Equal(t, 6, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderTrimsCells(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"  Handle ", " Parz. ", "Enteig  ", "  Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, 4, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderMissingMandatory(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "", "", "Landerwerb"},
	}

	_, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsStructural(err))

	var structural *pkgerrors.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, []string{"Parz.", "Enteig", "Address"}, structural.Missing)
}

func TestReadHeaderMissingEverything(t *testing.T) {
	_, err := layout.ReadHeader(layout.HeaderRows{}, layout.DefaultSchema())
	require.Error(t, err)

	var structural *pkgerrors.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, []string{"Handle", "Parz.", "Enteig", "Address"}, structural.Missing)
}

func TestReadHeaderParameterScanStops(t *testing.T) {
	// Only the first column after the label carries a parameter tag;
	// the scan must not run past it.
	rows := layout.HeaderRows{
		Primary:   []string{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "Address"},
		Secondary: []string{"", "", "", "", "parameter 1", ""},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 5, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 1)))
	assert.False(t, l.Has(layout.ParameterKey("Temp. Nutzung", 2)))
	assert.Equal(t, 6, mustColumn(t, l, layout.KeyAddress))
	assert.Equal(t, []layout.Span{{Label: "Temp. Nutzung", Start: 4, End: 5}}, l.Spans())
}

func TestReadHeaderParameterLabelCase(t *testing.T) {
	rows := layout.HeaderRows{
		Primary:   []string{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "", "Address"},
		Secondary: []string{"", "", "", "", "Parameter 1", ""},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, 5, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 1)))
}

func TestReadHeaderSpecialWithoutParameters(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "Parz.", "Enteig", "Temp. Nutzung", "Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 4, mustColumn(t, l, "Temp. Nutzung"))
	assert.Empty(t, l.ParameterKeys("Temp. Nutzung"))
	assert.Equal(t, 5, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderVariantWithoutSecondRowLabel(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "Parz.", "Enteig", "Dienstbarkeit", "Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, 4, mustColumn(t, l, "Dienstbarkeit"))
	assert.False(t, l.Has(layout.VariantKey("Dienstbarkeit")))
	assert.Equal(t, 5, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderSkipsUnknownLabels(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "Parz.", "Enteig", "Bemerkung", "Landerwerb", "Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)

	assert.False(t, l.Has("Bemerkung"))
	assert.Equal(t, 5, mustColumn(t, l, "Landerwerb"))
	assert.Equal(t, 6, mustColumn(t, l, layout.KeyAddress))
}

func TestReadHeaderDuplicateLabelKeepsFirst(t *testing.T) {
	rows := layout.HeaderRows{
		Primary: []string{"Handle", "Parz.", "Enteig", "Landerwerb", "Landerwerb", "Address"},
	}

	l, err := layout.ReadHeader(rows, layout.DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, 4, mustColumn(t, l, "Landerwerb"))
}
