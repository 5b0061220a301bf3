package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

// writeCLIConfig writes a config file rooted in a temp directory and returns
// its path together with the base directory it points at.
func writeCLIConfig(t *testing.T, whisperBinary string) (configPath, baseDir string) {
	t.Helper()
	tmp := t.TempDir()
	baseDir = filepath.Join(tmp, "scribe")
	configPath = filepath.Join(tmp, "config.toml")

	content := fmt.Sprintf(`[paths]
base_dir = %q
log_dir = %q

[whisper]
binary = %q
`, baseDir, filepath.Join(baseDir, "logs"), whisperBinary)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath, baseDir
}

// writeStubWhisper creates an executable that mimics whisper's output
// contract: it parses --output_dir and writes <base>.txt there.
func writeStubWhisper(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "whisper")
	script := `#!/bin/sh
src="$1"
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "--output_dir" ]; then out="$2"; fi
  shift
done
base=$(basename "$src")
base="${base%.*}"
printf 'stub transcript for %s\n' "$base" > "$out/$base.txt"
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub whisper: %v", err)
	}
	return path
}
