package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing config file")
	}
	if cfg.Whisper.Model != "base" {
		t.Fatalf("expected default model base, got %q", cfg.Whisper.Model)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if !cfg.History.Enabled {
		t.Fatal("history should default to enabled")
	}
}

func TestLoadDerivesPipelineDirsFromBase(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "scribe.toml")
	content := "[paths]\nbase_dir = \"" + base + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s to be used, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Paths.DropboxDir != filepath.Join(base, "dropbox") {
		t.Fatalf("dropbox dir not derived from base: %s", cfg.Paths.DropboxDir)
	}
	if cfg.Paths.OutputDir != filepath.Join(base, "output") {
		t.Fatalf("output dir not derived from base: %s", cfg.Paths.OutputDir)
	}
	if cfg.Paths.ProcessedDir != filepath.Join(base, "processed") {
		t.Fatalf("processed dir not derived from base: %s", cfg.Paths.ProcessedDir)
	}
}

func TestLoadRespectsExplicitDirs(t *testing.T) {
	base := t.TempDir()
	drop := filepath.Join(base, "in")
	path := filepath.Join(base, "scribe.toml")
	content := strings.Join([]string{
		"[paths]",
		"base_dir = \"" + base + "\"",
		"dropbox_dir = \"" + drop + "\"",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paths.DropboxDir != drop {
		t.Fatalf("explicit dropbox dir ignored: %s", cfg.Paths.DropboxDir)
	}
}

func TestLoadRejectsUnknownModel(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "scribe.toml")
	content := "[whisper]\nmodel = \"enormous\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown whisper model")
	}
}

func TestValidateRejectsOverlappingDirs(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DropboxDir = "/tmp/scribe/same"
	cfg.Paths.OutputDir = "/tmp/scribe/same"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when dropbox and output dirs overlap")
	}
}

func TestHistoryPathDefaultsUnderLogDir(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "scribe.toml")
	content := "[paths]\nbase_dir = \"" + base + "\"\nlog_dir = \"" + filepath.Join(base, "logs") + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(base, "logs", "history.db")
	if cfg.History.Path != want {
		t.Fatalf("history path = %s, want %s", cfg.History.Path, want)
	}
}

func TestIsWhisperModel(t *testing.T) {
	for _, name := range config.WhisperModels() {
		if !config.IsWhisperModel(name) {
			t.Fatalf("%q should be a recognized model", name)
		}
	}
	if config.IsWhisperModel("huge") {
		t.Fatal("huge should not be a recognized model")
	}
}

func TestApplyOverridesRehomesPipelineDirs(t *testing.T) {
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	logDir := cfg.Paths.LogDir

	base := t.TempDir()
	if err := cfg.ApplyOverrides(config.Overrides{BaseDir: base, Model: "Small", Language: "french"}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if cfg.Paths.DropboxDir != filepath.Join(base, "dropbox") {
		t.Fatalf("dropbox dir not re-homed: %s", cfg.Paths.DropboxDir)
	}
	if cfg.Paths.ProcessedDir != filepath.Join(base, "processed") {
		t.Fatalf("processed dir not re-homed: %s", cfg.Paths.ProcessedDir)
	}
	if cfg.Paths.LogDir != logDir {
		t.Fatalf("log dir must not move with the base override: %s", cfg.Paths.LogDir)
	}
	if cfg.Whisper.Model != "small" {
		t.Fatalf("model override not lowered: %q", cfg.Whisper.Model)
	}
	if cfg.Whisper.Language != "french" {
		t.Fatalf("language override lost: %q", cfg.Whisper.Language)
	}
}

func TestApplyOverridesRejectsUnknownModel(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DropboxDir = "/tmp/scribe/in"
	cfg.Paths.OutputDir = "/tmp/scribe/out"
	cfg.Paths.ProcessedDir = "/tmp/scribe/done"
	if err := cfg.ApplyOverrides(config.Overrides{Model: "enormous"}); err == nil {
		t.Fatal("expected error for unknown model override")
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DropboxDir = filepath.Join(base, "dropbox")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.ProcessedDir = filepath.Join(base, "processed")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DropboxDir, cfg.Paths.OutputDir, cfg.Paths.ProcessedDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s missing after EnsureDirectories", dir)
		}
	}
}
