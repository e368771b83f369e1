package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areatab/areatab/pkg/errors"
	"github.com/areatab/areatab/pkg/records"
)

func TestSetAdd(t *testing.T) {
	t.Run("normalizes handle on add", func(t *testing.T) {
		set := records.NewSet()
		table := &records.Table{Handle: " a1 "}
		require.NoError(t, set.Add(table))

		assert.Equal(t, "A1", table.Handle)
		got, ok := set.Get("a1")
		assert.True(t, ok)
		assert.Same(t, table, got)
	})

	t.Run("rejects duplicate handle", func(t *testing.T) {
		set := records.NewSet()
		require.NoError(t, set.Add(&records.Table{Handle: "A1"}))

		err := set.Add(&records.Table{Handle: "a1"})
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
		assert.Equal(t, 1, set.Len())
	})

	t.Run("rejects empty handle", func(t *testing.T) {
		set := records.NewSet()
		err := set.Add(&records.Table{Handle: "   "})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects nil table", func(t *testing.T) {
		set := records.NewSet()
		require.Error(t, set.Add(nil))
	})
}

func TestSetOrder(t *testing.T) {
	set := records.NewSet()
	for _, h := range []string{"B2", "A1", "C3"} {
		require.NoError(t, set.Add(&records.Table{Handle: h}))
	}

	assert.Equal(t, []string{"B2", "A1", "C3"}, set.Handles())

	list := set.List()
	require.Len(t, list, 3)
	assert.Equal(t, "B2", list[0].Handle)
	assert.Equal(t, "A1", list[1].Handle)
	assert.Equal(t, "C3", list[2].Handle)
}

func TestSetForEach(t *testing.T) {
	set := records.NewSet()
	for _, h := range []string{"A1", "B2", "C3"} {
		require.NoError(t, set.Add(&records.Table{Handle: h}))
	}

	var seen []string
	set.ForEach(func(tbl *records.Table) bool {
		seen = append(seen, tbl.Handle)
		return tbl.Handle != "B2" // stop after B2
	})
	assert.Equal(t, []string{"A1", "B2"}, seen)
}

func TestSetCopy(t *testing.T) {
	set := records.NewSet()
	require.NoError(t, set.Add(&records.Table{
		Handle: "A1",
		Items:  []records.Item{{Name: "Landerwerb", Area: records.Area(120.5)}},
	}))

	cp := set.Copy()
	require.Equal(t, set.Handles(), cp.Handles())

	copied, ok := cp.Get("A1")
	require.True(t, ok)
	original, _ := set.Get("A1")
	assert.NotSame(t, original, copied)

	*copied.Items[0].Area = 1
	assert.Equal(t, 120.5, *original.Items[0].Area)
}

func TestNewSetOf(t *testing.T) {
	t.Run("keeps given order", func(t *testing.T) {
		set, err := records.NewSetOf(
			&records.Table{Handle: "Z9"},
			&records.Table{Handle: "A1"},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"Z9", "A1"}, set.Handles())
	})

	t.Run("fails on duplicate", func(t *testing.T) {
		_, err := records.NewSetOf(
			&records.Table{Handle: "A1"},
			&records.Table{Handle: "a1"},
		)
		require.Error(t, err)
	})
}
