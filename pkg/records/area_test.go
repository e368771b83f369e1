package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areatab/areatab/pkg/records"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *float64
		wantErr bool
	}{
		{name: "empty means absent", in: "", want: nil},
		{name: "whitespace means absent", in: "   ", want: nil},
		{name: "plain integer", in: "100", want: records.Area(100)},
		{name: "decimal point", in: "120.5", want: records.Area(120.5)},
		{name: "decimal comma", in: "12,25", want: records.Area(12.25)},
		{name: "german thousands", in: "1.234,56", want: records.Area(1234.56)},
		{name: "inner spaces", in: "1 234,5", want: records.Area(1234.5)},
		{name: "surrounding spaces", in: " 30.0 ", want: records.Area(30)},
		{name: "zero is a value", in: "0", want: records.Area(0)},
		{name: "negative parses", in: "-5.5", want: records.Area(-5.5)},
		{name: "garbage", in: "n/a", wantErr: true},
		{name: "two commas", in: "1,2,3", wantErr: true},
		{name: "lone dash", in: "-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := records.ParseArea(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				// An unparsable area must stay absent, never become zero.
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{name: "absent", in: nil, want: ""},
		{name: "integer", in: records.Area(100), want: "100"},
		{name: "fraction", in: records.Area(120.5), want: "120.5"},
		{name: "small fraction", in: records.Area(12.25), want: "12.25"},
		{name: "zero", in: records.Area(0), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, records.FormatArea(tt.in))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{0, 1, 100, 120.5, 12.25, 0.001, 98765.4321}
	for _, v := range values {
		text := records.FormatArea(records.Area(v))
		back, err := records.ParseArea(text)
		require.NoError(t, err, "value %v rendered as %q", v, text)
		require.NotNil(t, back)
		assert.Equal(t, v, *back)
	}
}

func TestAreaEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *float64
		want bool
	}{
		{name: "both absent", a: nil, b: nil, want: true},
		{name: "absent vs present", a: nil, b: records.Area(0), want: false},
		{name: "present vs absent", a: records.Area(50), b: nil, want: false},
		{name: "equal values", a: records.Area(50), b: records.Area(50), want: true},
		{name: "differing values", a: records.Area(50), b: records.Area(55), want: false},
		{name: "no tolerance", a: records.Area(50), b: records.Area(50.0000001), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, records.AreaEqual(tt.a, tt.b))
		})
	}
}
