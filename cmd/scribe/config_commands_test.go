package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigPathReportsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	out, err := runCLI(t, []string{"config", "path"}, missing)
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, missing)
	requireContains(t, out, "defaults are in effect")
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	configPath, baseDir := writeCLIConfig(t, "whisper")
	out, err := runCLI(t, []string{"config", "show"}, configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "base_dir")
	requireContains(t, out, baseDir)
	requireContains(t, out, "model = 'base'")
}
