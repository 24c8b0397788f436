package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kemballops/gatecheck/pkg/normalize"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind normalize.Kind
		want string
	}{
		{"identifier trims and upper folds", "  msku1234567 ", normalize.KindIdentifier, "MSKU1234567"},
		{"identifier already canonical", "MSKU1234567", normalize.KindIdentifier, "MSKU1234567"},
		{"identifier missing becomes empty", "   ", normalize.KindIdentifier, ""},
		{"identifier nan becomes empty", "NaN", normalize.KindIdentifier, ""},
		{"status lower folds", " Job Complete ", normalize.KindStatus, "job complete"},
		{"activity lower folds", "STANDARD", normalize.KindActivity, "standard"},
		{"location upper folds", "James Kemball Holding Centre", normalize.KindLocation, "JAMES KEMBALL HOLDING CENTRE"},
		{"haulier upper folds", " kemball ", normalize.KindHaulier, "KEMBALL"},
		{"missing status becomes nan", "", normalize.KindStatus, "nan"},
		{"missing location becomes nan", "  ", normalize.KindLocation, "nan"},
		{"nan location stays nan", "NAN", normalize.KindLocation, "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Value(tt.raw, tt.kind))
		})
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		" abc123 ", "ABC123", "Job Complete", "", "  ", "nan", "NAN",
		"JAMES KEMBALL HOLDING CENTER", "standard", "MSKU1234567\t",
	}
	kinds := []normalize.Kind{
		normalize.KindIdentifier, normalize.KindStatus, normalize.KindLocation,
		normalize.KindActivity, normalize.KindHaulier,
	}

	for _, kind := range kinds {
		for _, raw := range inputs {
			once := normalize.Value(raw, kind)
			twice := normalize.Value(once, kind)
			assert.Equal(t, once, twice, "normalize(%q, %s) not idempotent", raw, kind)
		}
	}
}

func TestIdentifierCaseInsensitive(t *testing.T) {
	// The documented policy: identifiers compare case-insensitively via
	// upper folding.
	assert.Equal(t, normalize.Identifier(" abc123 "), normalize.Identifier("ABC123"))
}

func TestMissing(t *testing.T) {
	assert.True(t, normalize.Missing(normalize.Status("")))
	assert.False(t, normalize.Missing(normalize.Status("complete")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "identifier", normalize.KindIdentifier.String())
	assert.Equal(t, "haulier", normalize.KindHaulier.String())
	assert.Equal(t, "unknown", normalize.Kind(99).String())
}
