package whisper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	langpkg "scribe/internal/language"
)

// Service provides Whisper transcription. One Service is constructed per
// drain run and reused for every job in that run so engine checks happen
// once, not per file.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a Whisper service with the given configuration.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return DefaultModel
}

// Binary returns the whisper executable name.
func (s *Service) Binary() string {
	if s.cfg.Binary != "" {
		return s.cfg.Binary
	}
	return DefaultBinary
}

// Available verifies the whisper executable can be resolved. A failure here
// is fatal for the whole run; nothing can be transcribed without the engine.
func (s *Service) Available() error {
	if s.commandRunner != nil {
		return nil
	}
	if _, err := exec.LookPath(s.Binary()); err != nil {
		return fmt.Errorf("whisper binary %q not found: %w", s.Binary(), err)
	}
	return nil
}

// Result contains the result of a transcription.
type Result struct {
	// Text is the plain text transcription.
	Text string
}

// Transcribe runs Whisper synchronously on one audio file and returns the
// transcript text. The call blocks until the engine finishes; no timeout is
// imposed here beyond ctx.
func (s *Service) Transcribe(ctx context.Context, source string) (Result, error) {
	var result Result

	if strings.TrimSpace(source) == "" {
		return result, fmt.Errorf("transcribe: source path required")
	}

	workDir, err := os.MkdirTemp("", "scribe-whisper-")
	if err != nil {
		return result, fmt.Errorf("transcribe: create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	if err := s.run(ctx, s.Binary(), s.buildArgs(source, workDir)...); err != nil {
		return result, fmt.Errorf("whisper: %w", err)
	}

	// Whisper writes <base>.txt next to its other outputs in the work dir.
	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	data, err := os.ReadFile(filepath.Join(workDir, baseName+"."+OutputFormat))
	if err != nil {
		return result, fmt.Errorf("whisper: read transcript: %w", err)
	}
	result.Text = strings.TrimSpace(string(data))
	return result, nil
}

// buildArgs constructs the whisper command arguments.
func (s *Service) buildArgs(source, outputDir string) []string {
	args := []string{
		source,
		"--model", s.Model(),
		"--output_dir", outputDir,
		"--output_format", OutputFormat,
		"--verbose", "False",
	}
	if lang := langpkg.ToISO2(s.cfg.Language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

// run executes a command, using the custom runner if set.
func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
