package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mholzen/leaftree/pkg/stats"
	"github.com/mholzen/leaftree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}

	err := app.Run(context.Background(), append([]string{"leaftree", "--log-file", filepath.Join(t.TempDir(), "test.log")}, args...))
	return out.String(), err
}

func TestSmallestCommand_Stdin(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty group", "- *\n", "-1\n"},
		{"empty input", "", "-1\n"},
		{"single leaf", "- 1\n", "1\n"},
		{"nested", "- *\n  - 1\n  - 2\n  - *\n    - 1\n    - 1\n    - 2\n    - 0\n", "0\n"},
		{"nested empty groups", "- *\n  - *\n    - *\n", "-1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.input, "smallest")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestSmallestCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.txt")
	require.NoError(t, os.WriteFile(path, []byte("- 55\n- *\n  - 22\n  - 21\n- 29\n"), 0o644))

	out, err := runApp(t, "", "smallest", path)
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)
}

func TestSmallestCommand_JSON(t *testing.T) {
	out, err := runApp(t, "- 3\n- 9\n", "smallest", "--format", "json")
	require.NoError(t, err)

	var payload map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, 3, payload["smallest"])
}

func TestSmallestCommand_NegativeLeaf(t *testing.T) {
	_, err := runApp(t, "- *\n  - -4\n", "smallest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, tree.ErrInvalidArgument))
}

func TestSmallestCommand_MissingFile(t *testing.T) {
	_, err := runApp(t, "", "smallest", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read outline")
}

func TestSmallestCommand_BadFormat(t *testing.T) {
	_, err := runApp(t, "- 1\n", "smallest", "--format", "yaml")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	out, err := runApp(t, "- *\n  - 9\n  - *\n    - 2\n  - 6\n", "stats", "--format", "json")
	require.NoError(t, err)

	var summary stats.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, stats.Summary{Leaves: 3, Groups: 2, MaxDepth: 2, Smallest: 2, Largest: 9}, summary)
}

func TestStatsCommand_Text(t *testing.T) {
	out, err := runApp(t, "- 7\n", "stats")
	require.NoError(t, err)
	assert.Equal(t, "leaves: 1, groups: 0, depth: 0, smallest: 7, largest: 7\n", out)
}

func TestShowCommand(t *testing.T) {
	out, err := runApp(t, "- *\n  - 1\n  - 2\n", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "├── 1")
	assert.Contains(t, out, "└── 2")
}

func TestShowCommand_Outline(t *testing.T) {
	out, err := runApp(t, "- 1\n-   2\n", "show", "--outline")
	require.NoError(t, err)
	assert.Equal(t, "- *\n  - 1\n  - 2\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "leaftree version dev")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := runApp(t, "- 1\n", "--log-level", "loud", "smallest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestApp_LogFileWrittenAndClosed(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	logPath := filepath.Join(t.TempDir(), "leaftree.log")
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader("- 4\n- 2\n")
	app.Writer = &out

	err := app.Run(context.Background(), []string{"leaftree", "--log-level", "info", "--log-file", logPath, "smallest"})
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: computed smallest leaf (smallest='2')")

	// the handler's file is closed once the app returns
	assert.Error(t, slog.Default().Handler().(*simpleHandler).writer.(*os.File).Close())
}
