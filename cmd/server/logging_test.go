package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/terrain-api/internal/errors"
)

func TestNewLogger(t *testing.T) {
	t.Run("json handler honors level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, "warn", "json")
		require.NoError(t, err)

		logger.Info("dropped")
		logger.Warn("kept", "request_id", "req_1")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "kept", line["msg"])
		assert.Equal(t, "req_1", line["request_id"])
	})

	t.Run("text handler is the default format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, "debug", "")
		require.NoError(t, err)

		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
		logger.Debug("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := newLogger(&bytes.Buffer{}, "loud", "text")
		assert.True(t, errors.IsInvalidArgument(err))

		_, err = newLogger(&bytes.Buffer{}, "info", "xml")
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestRecoverPanic(t *testing.T) {
	err := recoverPanic("boom")
	require.Error(t, err)
	assert.True(t, errors.IsInternal(errors.FromGRPCError(err)))
	assert.Contains(t, err.Error(), "panic: boom")
}
