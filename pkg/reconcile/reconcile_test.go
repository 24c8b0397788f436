package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemballops/gatecheck/pkg/errors"
	"github.com/kemballops/gatecheck/pkg/filter"
	"github.com/kemballops/gatecheck/pkg/reconcile"
	"github.com/kemballops/gatecheck/pkg/tabular"
)

func topsSide(t *testing.T, rows [][]string) reconcile.Side {
	t.Helper()
	tbl, err := tabular.New("TOPS",
		[]string{"Container Number", "Status Name", "Unload Location"}, rows)
	require.NoError(t, err)
	return reconcile.Side{
		Table: tbl,
		Columns: filter.Columns{
			Identifier: "Container Number",
			Status:     "Status Name",
			Location:   "Unload Location",
		},
	}
}

func cymanSide(t *testing.T, rows [][]string) reconcile.Side {
	t.Helper()
	tbl, err := tabular.New("Cyman", []string{"Unit No", "In Activity"}, rows)
	require.NoError(t, err)
	return reconcile.Side{
		Table: tbl,
		Columns: filter.Columns{
			Identifier: "Unit No",
			Activity:   "In Activity",
		},
	}
}

func idRows(ids ...string) [][]string {
	rows := make([][]string, len(ids))
	for i, id := range ids {
		rows[i] = []string{id, "", ""}
	}
	return rows
}

func TestReconcileBase(t *testing.T) {
	a := topsSide(t, idRows("X1", "X2", "X3"))
	b := cymanSide(t, idRows("X2", "X3", "X4"))

	result, err := reconcile.Reconcile(a, b)
	require.NoError(t, err)

	assert.Equal(t, []string{"X1"}, result.AOnly)
	assert.Equal(t, []string{"X4"}, result.BOnly)
	assert.Empty(t, result.Flags, "intersection excluded without rules")
}

func TestReconcileIdenticalSets(t *testing.T) {
	a := topsSide(t, idRows("X1", "X2"))
	b := cymanSide(t, idRows("X2", "X1"))

	result, err := reconcile.Reconcile(a, b)
	require.NoError(t, err)

	assert.Empty(t, result.AOnly)
	assert.Empty(t, result.BOnly)
	assert.Empty(t, result.Flags)
}

func TestReconcileHalvesAreDisjoint(t *testing.T) {
	a := topsSide(t, idRows("X1", "X1", "X2", "X3"))
	b := cymanSide(t, idRows("X3", "X4", "X4", "X5"))

	result, err := reconcile.Reconcile(a, b)
	require.NoError(t, err)

	onA := make(map[string]bool)
	for _, id := range result.AOnly {
		onA[id] = true
	}
	for _, id := range result.BOnly {
		assert.False(t, onA[id], "identifier %s reported on both sides", id)
	}
}

func TestReconcileCaseInsensitiveIdentifiers(t *testing.T) {
	a := topsSide(t, idRows(" x1 "))
	b := cymanSide(t, idRows("X1"))

	result, err := reconcile.Reconcile(a, b)
	require.NoError(t, err)

	assert.Empty(t, result.AOnly)
	assert.Empty(t, result.BOnly)
}

func TestReconcileEmptyInput(t *testing.T) {
	t.Run("one side empty", func(t *testing.T) {
		a := topsSide(t, nil)
		b := cymanSide(t, idRows("X1", "X2"))

		result, err := reconcile.Reconcile(a, b)
		require.NoError(t, err)
		assert.Empty(t, result.AOnly)
		assert.Equal(t, []string{"X1", "X2"}, result.BOnly)
	})

	t.Run("both sides empty", func(t *testing.T) {
		result, err := reconcile.Reconcile(topsSide(t, nil), cymanSide(t, nil))
		require.NoError(t, err)
		assert.Empty(t, result.AOnly)
		assert.Empty(t, result.BOnly)
	})
}

func TestReconcileMissingIdentifierColumn(t *testing.T) {
	a := topsSide(t, idRows("X1"))
	b := cymanSide(t, idRows("X1"))
	b.Columns.Identifier = ""

	_, err := reconcile.Reconcile(a, b)
	require.Error(t, err)
	assert.True(t, errors.IsColumnUnresolved(err))
	assert.Contains(t, err.Error(), "Cyman")
}

func TestExceptionRules(t *testing.T) {
	cfg := filter.DefaultConfig()
	rules := reconcile.DefaultRules(cfg)

	t.Run("skip rule suppresses reconciled pairs", func(t *testing.T) {
		a := topsSide(t, [][]string{{"Y1", "Complete", "JAMES KEMBALL HOLDING CENTER"}})
		b := cymanSide(t, [][]string{{"Y1", "Standard"}})

		result, err := reconcile.Reconcile(a, b, reconcile.WithRules(rules))
		require.NoError(t, err)
		assert.Empty(t, result.Flags)
	})

	t.Run("reclassify rule reports pair as missing from TOPS", func(t *testing.T) {
		a := topsSide(t, [][]string{{"Y1", "In Progress", "FELIXSTOWE SOUTH"}})
		b := cymanSide(t, [][]string{{"Y1", "Standard"}})

		result, err := reconcile.Reconcile(a, b, reconcile.WithRules(rules))
		require.NoError(t, err)

		require.Len(t, result.Flags, 1)
		flag := result.Flags[0]
		assert.Equal(t, "Y1", flag.Identifier)
		assert.False(t, flag.PresentA)
		assert.True(t, flag.PresentB)
	})

	t.Run("skip wins over reclassify when both match", func(t *testing.T) {
		// In progress at the exact holding center with standard activity
		// satisfies both rules; the skip rule is listed first, so the
		// pair is suppressed.
		a := topsSide(t, [][]string{{"Y1", "In Progress", "JAMES KEMBALL HOLDING CENTER"}})
		b := cymanSide(t, [][]string{{"Y1", "Standard"}})

		result, err := reconcile.Reconcile(a, b, reconcile.WithRules(rules))
		require.NoError(t, err)
		assert.Empty(t, result.Flags)
	})

	t.Run("default outcome flags pair for review", func(t *testing.T) {
		a := topsSide(t, [][]string{{"Y1", "Complete", "FELIXSTOWE SOUTH"}})
		b := cymanSide(t, [][]string{{"Y1", "Restitution"}})

		result, err := reconcile.Reconcile(a, b, reconcile.WithRules(rules))
		require.NoError(t, err)

		require.Len(t, result.Flags, 1)
		flag := result.Flags[0]
		assert.True(t, flag.PresentA)
		assert.True(t, flag.PresentB)
		assert.Equal(t, "present in both systems", flag.Reason)
	})
}

func TestReclassifyScenario(t *testing.T) {
	// A row at the holding centre (British spelling) in progress, matched
	// by a standard Cyman row. The skip rule compares the location
	// strictly, so the variant spelling does not suppress the pair: the
	// reclassify rule fires and the pair is reported as missing from TOPS.
	a := topsSide(t, [][]string{{"Y1", "In Progress", "JAMES KEMBALL HOLDING CENTRE"}})
	b := cymanSide(t, [][]string{{"Y1", "Standard"}})

	rules := reconcile.DefaultRules(filter.DefaultConfig())
	result, err := reconcile.Reconcile(a, b, reconcile.WithRules(rules))
	require.NoError(t, err)

	require.Len(t, result.Flags, 1, "variant spelling must reclassify, not suppress")
	flag := result.Flags[0]
	assert.Equal(t, "Y1", flag.Identifier)
	assert.False(t, flag.PresentA)
	assert.True(t, flag.PresentB)
	assert.Equal(t, "in progress on TOPS side", flag.Reason)
}

func TestSingletonMode(t *testing.T) {
	a := topsSide(t, idRows("S1", "D1", "D1"))
	b := cymanSide(t, idRows("D1", "S2"))

	t.Run("disabled by default", func(t *testing.T) {
		result, err := reconcile.Reconcile(a, b)
		require.NoError(t, err)
		assert.Empty(t, result.Singletons)
	})

	t.Run("combined count of one", func(t *testing.T) {
		result, err := reconcile.Reconcile(a, b, reconcile.WithSingletonCheck(true))
		require.NoError(t, err)
		// D1 occurs 3 times combined; S1 and S2 once each.
		assert.Equal(t, []string{"S1", "S2"}, result.Singletons)
	})
}

func TestReconcileDeterministic(t *testing.T) {
	a := topsSide(t, idRows("B2", "A1", "C3", "E5", "D4"))
	b := cymanSide(t, idRows("F6", "C3", "Z9", "A1"))

	first, err := reconcile.Reconcile(a, b, reconcile.WithSingletonCheck(true))
	require.NoError(t, err)
	second, err := reconcile.Reconcile(a, b, reconcile.WithSingletonCheck(true))
	require.NoError(t, err)

	assert.Equal(t, first.AOnly, second.AOnly)
	assert.Equal(t, first.BOnly, second.BOnly)
	assert.Equal(t, first.Singletons, second.Singletons)
	assert.Equal(t, []string{"B2", "D4", "E5"}, first.AOnly, "sorted ascending")
	assert.Equal(t, []string{"F6", "Z9"}, first.BOnly)
}
