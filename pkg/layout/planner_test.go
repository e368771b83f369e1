package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areatab/areatab/pkg/layout"
	"github.com/areatab/areatab/pkg/records"
)

func mustColumn(t *testing.T, l *layout.Layout, key string) int {
	t.Helper()
	col, ok := l.Column(key)
	require.True(t, ok, "key %q not in layout", key)
	return col
}

func TestPlanIdentityAndAddressOnly(t *testing.T) {
	tables := []*records.Table{{Handle: "A1"}}
	l := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, 1, mustColumn(t, l, layout.KeyHandle))
	assert.Equal(t, 2, mustColumn(t, l, layout.KeyParzelle))
	assert.Equal(t, 3, mustColumn(t, l, layout.KeyNumber))
	assert.Equal(t, 4, mustColumn(t, l, layout.KeyAddress))
	assert.Equal(t, 4, l.Width())
	assert.Empty(t, l.Spans())
}

func TestPlanPlainCategory(t *testing.T) {
	tables := []*records.Table{{
		Handle: "A1",
		Items:  []records.Item{{Name: "Landerwerb", Area: records.Area(120.5)}},
	}}
	l := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, 4, mustColumn(t, l, "Landerwerb"))
	assert.False(t, l.Has(layout.VariantKey("Landerwerb")))
	assert.Equal(t, 5, mustColumn(t, l, layout.KeyAddress))
	assert.Empty(t, l.Spans())
}

func TestPlanVariantCategory(t *testing.T) {
	tables := []*records.Table{{
		Handle: "A1",
		Items: []records.Item{{
			Name:     "Dienstbarkeit",
			SubItems: []records.SubItem{{Name: "Leitung", Area: records.Area(8)}},
		}},
	}}
	l := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, 4, mustColumn(t, l, "Dienstbarkeit"))
	assert.Equal(t, 5, mustColumn(t, l, layout.VariantKey("Dienstbarkeit")))
	assert.Equal(t, 6, mustColumn(t, l, layout.KeyAddress))

	spans := l.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, layout.Span{Label: "Dienstbarkeit", Start: 4, End: 5}, spans[0])
}

func TestPlanSpecialCategoryPairs(t *testing.T) {
	tables := []*records.Table{{
		Handle: "A2",
		Items: []records.Item{{
			Name: "Temp. Nutzung",
			SubItems: []records.SubItem{
				{Name: "Kiosk", Area: records.Area(30)},
				{Name: "Lager", Area: records.Area(12.25)},
			},
		}},
	}}
	l := layout.Plan(tables, layout.DefaultSchema())

	// Pairs are (area, name): name columns at 5 and 7, areas at 4 and 6
	assert.Equal(t, 5, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 1)))
	assert.Equal(t, 7, mustColumn(t, l, layout.ParameterKey("Temp. Nutzung", 2)))
	assert.False(t, l.Has("Temp. Nutzung"), "special category with slots has no plain area key")
	assert.Equal(t, 8, mustColumn(t, l, layout.KeyAddress))

	spans := l.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, layout.Span{Label: "Temp. Nutzung", Start: 4, End: 7}, spans[0])
}

func TestPlanSpecialCategoryWithoutSubItems(t *testing.T) {
	tables := []*records.Table{{
		Handle: "A1",
		Items:  []records.Item{{Name: "Temp. Nutzung", Area: records.Area(5)}},
	}}
	l := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, 4, mustColumn(t, l, "Temp. Nutzung"))
	assert.Empty(t, l.ParameterKeys("Temp. Nutzung"))
}

func TestPlanFirstSeenOrderAcrossTables(t *testing.T) {
	tables := []*records.Table{
		{
			Handle: "A1",
			Items: []records.Item{
				{Name: "Dienstbarkeit", Area: records.Area(10)},
				{Name: "Landerwerb", Area: records.Area(20)},
			},
		},
		{
			Handle: "B2",
			Items: []records.Item{
				{Name: "Landerwerb", Area: records.Area(30)},
				{Name: "Baurecht", Area: records.Area(40)}, // outside the schema vocabulary
			},
		},
	}
	l := layout.Plan(tables, layout.DefaultSchema())

	// Discovery order, not alphabetical and not schema order
	assert.Equal(t, 4, mustColumn(t, l, "Dienstbarkeit"))
	assert.Equal(t, 5, mustColumn(t, l, "Landerwerb"))
	assert.Equal(t, 6, mustColumn(t, l, "Baurecht"))
	assert.Equal(t, 7, mustColumn(t, l, layout.KeyAddress))
}

func TestPlanSubItemsMergeAcrossTables(t *testing.T) {
	tables := []*records.Table{
		{
			Handle: "A1",
			Items: []records.Item{{
				Name:     "Temp. Nutzung",
				SubItems: []records.SubItem{{Name: "Kiosk", Area: records.Area(1)}},
			}},
		},
		{
			Handle: "B2",
			Items: []records.Item{{
				Name: "Temp. Nutzung",
				SubItems: []records.SubItem{
					{Name: "Kiosk", Area: records.Area(2)}, // duplicate name, deduplicated
					{Name: "Lager", Area: records.Area(3)},
				},
			}},
		},
	}
	l := layout.Plan(tables, layout.DefaultSchema())

	keys := l.ParameterKeys("Temp. Nutzung")
	require.Len(t, keys, 2, "distinct sub-item names are deduplicated")
	assert.Equal(t, 5, mustColumn(t, l, keys[0]))
	assert.Equal(t, 7, mustColumn(t, l, keys[1]))
}

func TestPlanNonSpecialWithManySubNames(t *testing.T) {
	// A non-special category with more than one distinct sub-item name is
	// an unanticipated shape: it still gets exactly one deterministic
	// (area, Art) pair and planning must not fail.
	tables := []*records.Table{{
		Handle: "A1",
		Items: []records.Item{{
			Name: "Dienstbarkeit",
			SubItems: []records.SubItem{
				{Name: "Leitung", Area: records.Area(1)},
				{Name: "Wegrecht", Area: records.Area(2)},
			},
		}},
	}}
	l := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, 4, mustColumn(t, l, "Dienstbarkeit"))
	assert.Equal(t, 5, mustColumn(t, l, layout.VariantKey("Dienstbarkeit")))
	assert.Equal(t, 6, mustColumn(t, l, layout.KeyAddress))
}

func TestPlanIsDeterministic(t *testing.T) {
	tables := []*records.Table{
		{
			Handle: "A1",
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
		},
		{
			Handle: "B1",
			Items:  []records.Item{{Name: "Dienstbarkeit", Area: records.Area(15)}},
		},
	}

	first := layout.Plan(tables, layout.DefaultSchema())
	second := layout.Plan(tables, layout.DefaultSchema())

	assert.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Column(key)
		b, _ := second.Column(key)
		assert.Equal(t, a, b, key)
	}
	assert.Equal(t, first.Spans(), second.Spans())
}

func TestPlanDoesNotMutateTables(t *testing.T) {
	table := &records.Table{
		Handle: "A1",
		Items: []records.Item{{
			Name:     "Temp. Nutzung",
			SubItems: []records.SubItem{{Name: "Kiosk", Area: records.Area(30)}},
		}},
	}
	before := table.Copy()

	layout.Plan([]*records.Table{table}, layout.DefaultSchema())

	assert.Equal(t, before, table)
}
