package testsupport

import (
	"path/filepath"
	"testing"

	"scribe/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test,
// with all directories created.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.BaseDir = base
	cfg.Paths.DropboxDir = filepath.Join(base, "dropbox")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.ProcessedDir = filepath.Join(base, "processed")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "logs", "history.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}
