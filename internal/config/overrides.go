package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Overrides carries command-line values that take precedence over the
// configuration file.
type Overrides struct {
	BaseDir  string
	Model    string
	Language string
}

// ApplyOverrides folds command-line overrides into an already-loaded
// configuration. An overridden base directory re-homes the dropbox, output,
// and processed directories underneath it; the log directory is unaffected.
func (c *Config) ApplyOverrides(o Overrides) error {
	if value := strings.TrimSpace(o.BaseDir); value != "" {
		expanded, err := expandPath(value)
		if err != nil {
			return fmt.Errorf("base dir: %w", err)
		}
		c.Paths.BaseDir = expanded
		c.Paths.DropboxDir = filepath.Join(expanded, defaultDropboxDirName)
		c.Paths.OutputDir = filepath.Join(expanded, defaultOutputDirName)
		c.Paths.ProcessedDir = filepath.Join(expanded, defaultProcessedDirName)
	}
	if value := strings.TrimSpace(o.Model); value != "" {
		c.Whisper.Model = strings.ToLower(value)
	}
	if value := strings.TrimSpace(o.Language); value != "" {
		c.Whisper.Language = value
	}
	return c.Validate()
}
