package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemballops/gatecheck/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("system", "TOPS").Msg("resolved container column")

	out := buf.String()
	assert.Contains(t, out, `"system":"TOPS"`)
	assert.Contains(t, out, `"message":"resolved container column"`)
}

func TestConfigure(t *testing.T) {
	t.Run("level parsing", func(t *testing.T) {
		var buf bytes.Buffer
		logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: "discard"})
		t.Cleanup(func() { logging.Configure(logging.DefaultConfig()) })

		logger := logging.New(&buf)
		logger.Debug().Msg("should be filtered")
		logger.Warn().Msg("should appear")

		assert.NotContains(t, buf.String(), "should be filtered")
		assert.Contains(t, buf.String(), "should appear")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		logging.Configure(&logging.Config{Level: "bogus", Format: "json", Output: "discard"})
		t.Cleanup(func() { logging.Configure(logging.DefaultConfig()) })
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("FromContext returns default when empty", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		require.NotNil(t, logger)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("WithLogger round trip", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)
		ctx := logging.WithLogger(context.Background(), &logger)

		logging.Ctx(ctx).Info().Msg("from context")
		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("WithRunID tags subsequent events", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-42")

		logging.FromContext(ctx).Info().Msg("tagged")

		assert.Equal(t, "run-42", logging.RunID(ctx))
		assert.True(t, tl.Contains(`"run_id":"run-42"`))
	})

	t.Run("WithSystem and WithRole add fields", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithSystem(ctx, "Cyman")
		ctx = logging.WithRole(ctx, "activity")

		logging.FromContext(ctx).Warn().Msg("filter clause skipped")

		assert.True(t, tl.ContainsAll(`"system":"Cyman"`, `"role":"activity"`))
	})
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Logger.Info().Msg("first")
	tl.Logger.Info().Msg("second")

	assert.Equal(t, 2, tl.Count())
	assert.True(t, tl.ContainsAll("first", "second"))

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}
