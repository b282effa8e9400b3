package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/starrating/internal/ports"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerIncludesCorrelationIDAndComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "debug", Component: "config"})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded config", "path", "/tmp/starrating.yaml")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "config", entries[0]["component"])
	require.Equal(t, "abc123", entries[0]["correlation_id"])
	require.Equal(t, "/tmp/starrating.yaml", entries[0]["path"])
	require.Equal(t, "loaded config", entries[0]["message"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerWithAddsAndOverridesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Component: "cli"})
	require.NoError(t, err)

	child := logger.With("component", "widget").(*Logger)
	child.Warn(context.Background(), "update rejected", "value", 3, "error", errors.New("inactive"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "widget", entries[0]["component"])
	require.EqualValues(t, 3, entries[0]["value"])
	require.Equal(t, "inactive", entries[0]["error"])
	require.Equal(t, 1, strings.Count(buf.String(), `"component"`))
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")
	logger.Error(context.Background(), "shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "shown", entries[0]["message"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse log level")
}

func TestNoOpLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")
	require.Zero(t, buf.Len())
	require.Same(t, noOp, noOp.With("key", "value"))

	logger.Info(context.Background(), "emitted")
	require.NotZero(t, buf.Len())
}

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	require.Empty(t, GetCorrelationID(context.Background()))

	ctx := ports.WithCorrelationID(context.Background(), "from-ports")
	require.Equal(t, "from-ports", GetCorrelationID(ctx))

	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	logger.Info(ctx, "tagged")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	require.Equal(t, "from-ports", entries[0]["correlation_id"])
}
