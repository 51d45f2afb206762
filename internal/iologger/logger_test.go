package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gncamtrap/internal/iologger"
	"github.com/gnames/gncamtrap/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defaultLogger := slog.Default()
	t.Cleanup(func() {
		iologger.Close()
		slog.SetDefault(defaultLogger)
	})

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}
	err := iologger.Init(dir, cfg)
	require.NoError(t, err)

	slog.Debug("Ensemble rule matched", "rule", "rollup")
	path := filepath.Join(dir, iologger.LogFile)
	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"rule":"rollup"`)
}

func TestInitBadDir(t *testing.T) {
	cfg := config.LogConfig{Format: "text", Level: "info", Destination: "file"}
	err := iologger.Init(filepath.Join(t.TempDir(), "no", "such", "dir"), cfg)
	require.Error(t, err)
}
