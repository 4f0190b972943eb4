package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output includes fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := ComponentLogger(New(Config{Level: "debug", Out: &buf}), "engine")
		logger.Info().Str("operation", "calculate").Msg("started")

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, "engine", event["component"])
		assert.Equal(t, "calculate", event["operation"])
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "nonsense", Out: &buf})
		logger.Debug().Msg("suppressed")
		assert.Empty(t, buf.Bytes())

		logger.Info().Msg("visible")
		assert.NotEmpty(t, buf.Bytes())
	})
}

func TestTraceID(t *testing.T) {
	t.Run("ids are unique", func(t *testing.T) {
		assert.NotEqual(t, NewTraceID(), NewTraceID())
	})

	t.Run("round-trips through context", func(t *testing.T) {
		ctx := ContextWithTraceID(context.Background(), "trace-123")
		id, ok := TraceIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, "trace-123", id)
	})

	t.Run("absent id reports false", func(t *testing.T) {
		_, ok := TraceIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("context logger carries the id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", Out: &buf})
		ctx := logger.WithContext(context.Background())
		ctx = ContextWithTraceID(ctx, "trace-456")

		FromContext(ctx).Info().Msg("event")

		var event map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, "trace-456", event["trace_id"])
	})
}
