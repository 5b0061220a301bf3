package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"scribe/internal/config"
)

// Result reports the outcome of one environment check.
type Result struct {
	Name     string
	Detail   string
	Passed   bool
	Optional bool
}

// Run evaluates every environment check for the given configuration.
func Run(cfg *config.Config) []Result {
	results := []Result{
		checkDirectory("Dropbox directory", cfg.Paths.DropboxDir),
		checkDirectory("Output directory", cfg.Paths.OutputDir),
		checkDirectory("Processed directory", cfg.Paths.ProcessedDir),
		checkDirectory("Log directory", cfg.Paths.LogDir),
		checkBinary(cfg.WhisperBinary()),
		checkModel(cfg.Whisper.Model),
	}
	results = append(results, checkHistory(cfg))
	return results
}

// Ready reports whether every required check passed.
func Ready(results []Result) bool {
	for _, result := range results {
		if !result.Passed && !result.Optional {
			return false
		}
	}
	return true
}

func checkDirectory(name, dir string) Result {
	result := Result{Name: name, Detail: dir}
	info, err := os.Stat(dir)
	if err != nil {
		result.Detail = fmt.Sprintf("%s: %v", dir, err)
		return result
	}
	if !info.IsDir() {
		result.Detail = fmt.Sprintf("%s is not a directory", dir)
		return result
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		result.Detail = fmt.Sprintf("%s: insufficient permissions: %v", dir, err)
		return result
	}
	result.Passed = true
	return result
}

func checkBinary(command string) Result {
	result := Result{Name: "Whisper binary", Detail: command}
	command = strings.TrimSpace(command)
	if command == "" {
		result.Detail = "command not configured"
		return result
	}
	resolved, err := exec.LookPath(command)
	if err != nil {
		result.Detail = fmt.Sprintf("binary %q not found", command)
		return result
	}
	result.Detail = resolved
	result.Passed = true
	return result
}

func checkModel(model string) Result {
	result := Result{Name: "Whisper model", Detail: model}
	if !config.IsWhisperModel(model) {
		result.Detail = fmt.Sprintf("unknown model %q (choose from %s)", model, strings.Join(config.WhisperModels(), ", "))
		return result
	}
	result.Passed = true
	return result
}

// checkHistory verifies the ledger location is writable. The check is
// optional: a broken ledger degrades the history command but never blocks a
// drain pass.
func checkHistory(cfg *config.Config) Result {
	result := Result{Name: "History ledger", Optional: true}
	if !cfg.History.Enabled {
		result.Detail = "disabled"
		result.Passed = true
		return result
	}
	dir := filepath.Dir(cfg.History.Path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		result.Detail = fmt.Sprintf("%s: not writable: %v", dir, err)
		return result
	}
	result.Detail = cfg.History.Path
	result.Passed = true
	return result
}
