package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areatab/areatab/pkg/layout"
)

func TestLayoutInsertionOrder(t *testing.T) {
	l := layout.New()
	l.Add(layout.KeyHandle, 1)
	l.Add("Zaun", 4)
	l.Add("Acker", 5)

	assert.Equal(t, []string{"handle", "Zaun", "Acker"}, l.Keys())
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 5, l.Width())

	col, ok := l.Column("Zaun")
	require.True(t, ok)
	assert.Equal(t, 4, col)

	_, ok = l.Column("missing")
	assert.False(t, ok)
}

func TestLayoutFirstRegistrationWins(t *testing.T) {
	l := layout.New()
	l.Add("Acker", 4)
	l.Add("Acker", 9)

	col, _ := l.Column("Acker")
	assert.Equal(t, 4, col)
	assert.Equal(t, 1, l.Len())
}

func TestLayoutSpans(t *testing.T) {
	l := layout.New()
	l.Add("Acker", 4)
	l.AddSpan(layout.Span{Label: "Acker", Start: 4, End: 7})

	spans := l.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, layout.Span{Label: "Acker", Start: 4, End: 7}, spans[0])

	// A span past the last keyed column widens the layout
	assert.Equal(t, 7, l.Width())
}

func TestKeyConstruction(t *testing.T) {
	assert.Equal(t, "Landerwerb", layout.CategoryKey("Landerwerb"))
	assert.Equal(t, "Landerwerb!Art", layout.VariantKey("Landerwerb"))
	assert.Equal(t, "Temp. Nutzung!parameter 2", layout.ParameterKey("Temp. Nutzung", 2))
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key       string
		category  string
		qualifier string
	}{
		{"Landerwerb", "Landerwerb", ""},
		{"Landerwerb!Art", "Landerwerb", "Art"},
		{"Temp. Nutzung!parameter 3", "Temp. Nutzung", "parameter 3"},
		{"handle", "handle", ""},
	}
	for _, tt := range tests {
		category, qualifier := layout.ParseKey(tt.key)
		assert.Equal(t, tt.category, category, tt.key)
		assert.Equal(t, tt.qualifier, qualifier, tt.key)
	}
}

func TestParameterIndex(t *testing.T) {
	n, ok := layout.ParameterIndex("parameter 1")
	require.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = layout.ParameterIndex("parameter 12")
	require.True(t, ok)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "Art", "parameter", "parameter 0", "parameter x"} {
		_, ok := layout.ParameterIndex(bad)
		assert.False(t, ok, bad)
	}
}

func TestLayoutCategories(t *testing.T) {
	l := layout.New()
	l.Add(layout.KeyHandle, 1)
	l.Add(layout.KeyParzelle, 2)
	l.Add(layout.KeyNumber, 3)
	l.Add(layout.CategoryKey("Landerwerb"), 4)
	l.Add(layout.VariantKey("Landerwerb"), 5)
	l.Add(layout.ParameterKey("Temp. Nutzung", 1), 7)
	l.Add(layout.ParameterKey("Temp. Nutzung", 2), 9)
	l.Add(layout.KeyAddress, 10)

	assert.Equal(t, []string{"Landerwerb", "Temp. Nutzung"}, l.Categories())
}

func TestLayoutParameterKeys(t *testing.T) {
	l := layout.New()
	l.Add(layout.ParameterKey("Temp. Nutzung", 1), 5)
	l.Add(layout.ParameterKey("Temp. Nutzung", 2), 7)

	keys := l.ParameterKeys("Temp. Nutzung")
	assert.Equal(t, []string{
		"Temp. Nutzung!parameter 1",
		"Temp. Nutzung!parameter 2",
	}, keys)

	assert.Empty(t, l.ParameterKeys("Landerwerb"))
}
