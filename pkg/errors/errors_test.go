package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/kemballops/gatecheck/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestUnresolvableColumnError(t *testing.T) {
	t.Run("with headers", func(t *testing.T) {
		err := &pkgerrors.UnresolvableColumnError{
			Table:   "Cyman",
			Role:    "unit identifier",
			Headers: []string{"Job Ref", "In Haulier", "In Activity"},
		}
		assert.Equal(t,
			"could not resolve unit identifier column in Cyman table (available headers: Job Ref, In Haulier, In Activity)",
			err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrColumnUnresolved))
	})

	t.Run("without headers", func(t *testing.T) {
		err := pkgerrors.NewUnresolvableColumnError("TOPS", "status", nil)
		assert.Equal(t, "could not resolve status column in TOPS table (no headers)", err.Error())
		assert.True(t, pkgerrors.IsColumnUnresolved(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewUnresolvableColumnError("TOPS", "location", []string{"A"})
		wrapped := errors.Join(errors.New("compare aborted"), base)
		assert.True(t, pkgerrors.IsColumnUnresolved(wrapped))
	})
}

func TestMissingColumnsError(t *testing.T) {
	err := pkgerrors.NewMissingColumnsError("TOPS", []string{"Status Name", "Unload Location"})
	assert.Equal(t, "TOPS table is missing required columns: Status Name, Unload Location", err.Error())
	assert.True(t, pkgerrors.IsColumnMissing(err))
	assert.False(t, pkgerrors.IsColumnUnresolved(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "accepted_statuses",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field accepted_statuses: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	t.Run("with line", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "csv",
			File:    "tops.csv",
			Line:    14,
			Message: "wrong number of fields",
		}
		assert.Equal(t, "parse error in csv file tops.csv at line 14: wrong number of fields", err.Error())
	})

	t.Run("wrap", func(t *testing.T) {
		base := errors.New("unexpected EOF")
		err := pkgerrors.WrapParse("xlsx", "cyman.xlsx", base)
		assert.ErrorIs(t, err, base)
		assert.Contains(t, err.Error(), "cyman.xlsx")
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("csv", "x.csv", nil))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "/tmp/report.xlsx", base)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "IO error during write of /tmp/report.xlsx: permission denied", err.Error())
	assert.Nil(t, pkgerrors.WrapIO("write", "x", nil))
}
