package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	t.Run("DebugSuppressedAtInfo", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitWithWriter(&buf, "INFO", "text"))

		Debug("hidden")
		Info("shown")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("DebugEmittedAtDebug", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitWithWriter(&buf, "DEBUG", "text"))

		Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("LevelIsCaseInsensitive", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitWithWriter(&buf, "debug", "text"))

		Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, "INFO", "json"))

	Info("structured", "bytes", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured", record["msg"])
	assert.Equal(t, float64(42), record["bytes"])
}

func TestStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, "INFO", "text"))

	Error("read failed", "op", "read_full", "fd", 3)

	out := buf.String()
	assert.Contains(t, out, "op=read_full")
	assert.Contains(t, out, "fd=3")
}

func TestInvalidConfig(t *testing.T) {
	t.Run("UnknownLevel", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, InitWithWriter(&buf, "VERBOSE", "text"))
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, InitWithWriter(&buf, "INFO", "xml"))
	})
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(&buf, "INFO", "text"))

	l := With("component", "copier")
	l.Info("start")

	assert.Contains(t, buf.String(), "component=copier")
}
