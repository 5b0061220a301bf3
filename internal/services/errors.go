package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceMissing marks items that disappeared between enumeration
	// and processing.
	ErrSourceMissing = errors.New("source missing")
	// ErrTranscription marks failures of the external transcription engine.
	ErrTranscription = errors.New("transcription failure")
	// ErrArchival marks a failed post-success move to the processed directory.
	ErrArchival = errors.New("archival failure")
	// ErrConfiguration marks unusable configuration detected at startup.
	ErrConfiguration = errors.New("configuration error")
	// ErrExternalTool marks a required external binary that is missing or broken.
	ErrExternalTool = errors.New("external tool error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTranscription
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
