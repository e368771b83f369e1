package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/areatab/areatab/pkg/records"
)

func TestCanonicalAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single line", in: "Musterweg 1", want: "Musterweg 1"},
		{name: "two lines", in: "Musterweg 1\n8000 Zürich", want: "Musterweg 1, 8000 Zürich"},
		{name: "windows line breaks", in: "Musterweg 1\r\n8000 Zürich", want: "Musterweg 1, 8000 Zürich"},
		{name: "blank lines dropped", in: "Musterweg 1\n\n\n8000 Zürich", want: "Musterweg 1, 8000 Zürich"},
		{name: "lines trimmed", in: "  Musterweg 1  \n  8000 Zürich ", want: "Musterweg 1, 8000 Zürich"},
		{name: "already canonical", in: "Musterweg 1, 8000 Zürich", want: "Musterweg 1, 8000 Zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, records.CanonicalAddress(tt.in))
		})
	}
}

func TestRestoreAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single part", in: "Musterweg 1", want: "Musterweg 1"},
		{name: "two parts", in: "Musterweg 1, 8000 Zürich", want: "Musterweg 1\n8000 Zürich"},
		{name: "spacing normalized", in: "Musterweg 1 ,8000 Zürich", want: "Musterweg 1\n8000 Zürich"},
		{name: "multi-line input is stable", in: "Musterweg 1\n8000 Zürich", want: "Musterweg 1\n8000 Zürich"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, records.RestoreAddress(tt.in))
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	stored := "Amt für Tiefbau\nPostfach 12\n8000 Zürich"
	canonical := records.CanonicalAddress(stored)
	assert.Equal(t, "Amt für Tiefbau, Postfach 12, 8000 Zürich", canonical)
	assert.Equal(t, stored, records.RestoreAddress(canonical))

	// Comparisons of either form agree once canonicalized
	assert.Equal(t, records.CanonicalAddress(stored), records.CanonicalAddress(canonical))
}
