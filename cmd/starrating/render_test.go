package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/starrating/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "starrating.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "render", "3")
	require.NoError(t, err)
	require.Equal(t, "★ ★ ★ ☆ ☆ 3/5\n", stdout)
}

func TestRenderWithoutValue(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "render")
	require.NoError(t, err)
	require.Equal(t, "☆ ☆ ☆ ☆ ☆ 0/5\n", stdout)
}

func TestRenderNonNumeric(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "render", "lots")
	require.NoError(t, err)
	require.Equal(t, "☆ ☆ ☆ ☆ ☆ NaN/5\n", stdout)
}

func TestRenderClasses(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "render", "1", "--classes", "--settings", `{"topLimit": 2}`)
	require.NoError(t, err)
	require.Equal(t, "1\tfilled\tglyphicon glyphicon-star\n2\toutline\tglyphicon glyphicon-star-empty\n", stdout)
}

func TestRenderUsesConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `settings:
  filledIcon: dot
  outlineIcon: ring
  topLimit: 4
glyphs:
  dot: "*"
  ring: "."
`)

	stdout, _, err := execute(t, "render", "2", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "* * . . 2/4\n", stdout)

	stdout, _, err = execute(t, "render", "2", "--config", path, "--settings", `{"topLimit": 3}`)
	require.NoError(t, err)
	require.Equal(t, "* * . 2/3\n", stdout)
}

func TestRenderRejectsMalformedOverride(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "render", "2", "--settings", `{"topLimit":`)
	var cfgErr *apperrors.ConfigParseError
	require.ErrorAs(t, err, &cfgErr)
	require.Empty(t, stdout)
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "settings:\n  topLimit: -2\n")
	_, _, err := execute(t, "render", "--config", path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPickWithoutTerminalRendersOnce(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "pick", "4", "--no-tui")
	require.NoError(t, err)
	require.Equal(t, "★ ★ ★ ★ ☆ 4/5\n", stdout)
}

func TestVerboseLogsEventsToStderr(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "render", "2", "--verbose", "--namespace", "shop")
	require.NoError(t, err)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q", line)
		require.NotEmpty(t, entry["correlation_id"])
		if entry["event_type"] == "ready.shop.star_rating" {
			found = true
			require.Equal(t, "events", entry["component"])
		}
	}
	require.True(t, found, "ready event should be logged")
}

func TestLogFileReceivesLogs(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "starrating.log")
	_, stderr, err := execute(t, "render", "1", "--log-level", "info", "--log-file", logPath)
	require.NoError(t, err)
	require.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "ready.ferrl.star_rating")
}
