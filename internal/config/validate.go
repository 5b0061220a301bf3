package config

import (
	"errors"
	"fmt"
	"strings"
)

// whisperModels enumerates recognized model sizes, trading accuracy for
// speed and resource cost.
var whisperModels = map[string]struct{}{
	"tiny":   {},
	"base":   {},
	"small":  {},
	"medium": {},
	"large":  {},
}

// WhisperModels returns the recognized model size names in ascending cost order.
func WhisperModels() []string {
	return []string{"tiny", "base", "small", "medium", "large"}
}

// IsWhisperModel reports whether name is a recognized model size.
func IsWhisperModel(name string) bool {
	_, ok := whisperModels[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWhisper(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.DropboxDir == c.Paths.OutputDir {
		return errors.New("paths.dropbox_dir and paths.output_dir must differ")
	}
	if c.Paths.DropboxDir == c.Paths.ProcessedDir {
		return errors.New("paths.dropbox_dir and paths.processed_dir must differ")
	}
	return nil
}

func (c *Config) validateWhisper() error {
	if !IsWhisperModel(c.Whisper.Model) {
		return fmt.Errorf("whisper.model must be one of %s, got %q",
			strings.Join(WhisperModels(), ", "), c.Whisper.Model)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout < 0 {
		return errors.New("notifications.request_timeout must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
