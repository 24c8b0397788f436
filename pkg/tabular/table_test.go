package tabular_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

func newTestTable(t *testing.T) *tabular.Table {
	t.Helper()
	table, err := tabular.New("TOPS",
		[]string{"Container Number", "Status Name", "Unload Location"},
		[][]string{
			{"MSKU1234567", "Job Complete", "JAMES KEMBALL HOLDING CENTER"},
			{"TCLU7654321", "In Progress", "FELIXSTOWE SOUTH"},
			{"HLXU1111111", "Cancelled", "JAMES KEMBALL HOLDING CENTRE"},
		})
	require.NoError(t, err)
	return table
}

func TestNew(t *testing.T) {
	t.Run("ragged rows are fitted to header width", func(t *testing.T) {
		table, err := tabular.New("Cyman",
			[]string{"Unit No", "In Activity"},
			[][]string{
				{"MSKU1234567"},
				{"TCLU7654321", "Standard", "extra"},
			})
		require.NoError(t, err)

		v, ok := table.Cell(0, "In Activity")
		assert.True(t, ok)
		assert.Equal(t, "", v)

		row := table.Row(1)
		assert.Equal(t, []string{"TCLU7654321", "Standard"}, row)
	})

	t.Run("duplicate headers rejected", func(t *testing.T) {
		_, err := tabular.New("TOPS", []string{"Unit No", "Unit No"}, nil)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestTableAccessors(t *testing.T) {
	table := newTestTable(t)

	assert.Equal(t, "TOPS", table.Name())
	assert.Equal(t, 3, table.Len())
	assert.True(t, table.HasColumn("Status Name"))
	assert.False(t, table.HasColumn("status name"))

	col, ok := table.Column("Container Number")
	require.True(t, ok)
	assert.Equal(t, []string{"MSKU1234567", "TCLU7654321", "HLXU1111111"}, col)

	_, ok = table.Column("Haulier")
	assert.False(t, ok)

	_, ok = table.Cell(99, "Status Name")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	table := newTestTable(t)

	filtered := table.Filter(func(row tabular.Row) bool {
		return strings.Contains(row.Get("Unload Location"), "KEMBALL")
	})

	assert.Equal(t, 2, filtered.Len())
	v, _ := filtered.Cell(1, "Container Number")
	assert.Equal(t, "HLXU1111111", v, "row order preserved")

	// Input untouched.
	assert.Equal(t, 3, table.Len())
}

func TestMapColumn(t *testing.T) {
	table := newTestTable(t)

	upper := table.MapColumn("Status Name", strings.ToUpper)

	v, _ := upper.Cell(0, "Status Name")
	assert.Equal(t, "JOB COMPLETE", v)

	// Source table is unchanged — transformations produce new tables.
	orig, _ := table.Cell(0, "Status Name")
	assert.Equal(t, "Job Complete", orig)

	t.Run("unknown column is a no-op", func(t *testing.T) {
		same := table.MapColumn("No Such Column", strings.ToUpper)
		assert.Equal(t, table.Len(), same.Len())
	})
}

func TestRowLookup(t *testing.T) {
	table := newTestTable(t)

	var seen []string
	table.Filter(func(row tabular.Row) bool {
		_, ok := row.Lookup("Haulier")
		assert.False(t, ok)
		seen = append(seen, row.Get("Container Number"))
		return false
	})
	assert.Equal(t, []string{"MSKU1234567", "TCLU7654321", "HLXU1111111"}, seen)
}
