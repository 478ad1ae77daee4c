package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_WritesToFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "leaftree.log")

	closeLog, err := setupLogging("info", logPath)
	require.NoError(t, err)
	slog.Info("hello world", "smallest", 3)
	slog.Debug("not written")
	require.NoError(t, closeLog())
	assert.ErrorIs(t, closeLog(), os.ErrClosed)

	data, err := os.ReadFile(logPath)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello world (smallest='3')")
	assert.NotContains(t, string(data), "not written")
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	closeLog, err := setupLogging("verbose", "")
	assert.Error(t, err)
	assert.Nil(t, closeLog)
	assert.Same(t, previous, slog.Default())
}

func TestSetupLogging_StderrCloserIsNoop(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	closeLog, err := setupLogging("warn", "")
	require.NoError(t, err)
	assert.NoError(t, closeLog())
	assert.NoError(t, closeLog())
}
