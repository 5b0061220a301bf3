package whisper_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/services/whisper"
)

func outputDirFromArgs(t *testing.T, args []string) string {
	t.Helper()
	for i, arg := range args {
		if arg == "--output_dir" && i+1 < len(args) {
			return args[i+1]
		}
	}
	t.Fatalf("no --output_dir in args: %v", args)
	return ""
}

func TestTranscribeReadsEngineOutput(t *testing.T) {
	svc := whisper.NewService(whisper.Config{Model: "tiny"})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		dir := outputDirFromArgs(t, args)
		return os.WriteFile(filepath.Join(dir, "talk.txt"), []byte("hello world\n"), 0o644)
	})

	result, err := svc.Transcribe(context.Background(), "/drop/talk.mp3")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if result.Text != "hello world" {
		t.Fatalf("Text = %q", result.Text)
	}
}

func TestTranscribePropagatesEngineFailure(t *testing.T) {
	engineErr := errors.New("unreadable audio")
	svc := whisper.NewService(whisper.Config{})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return engineErr
	})

	if _, err := svc.Transcribe(context.Background(), "/drop/bad.mp3"); !errors.Is(err, engineErr) {
		t.Fatalf("expected engine error, got %v", err)
	}
}

func TestTranscribeFailsWhenOutputMissing(t *testing.T) {
	svc := whisper.NewService(whisper.Config{})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return nil // engine "succeeds" but writes nothing
	})

	if _, err := svc.Transcribe(context.Background(), "/drop/talk.mp3"); err == nil {
		t.Fatal("expected error when transcript file is missing")
	}
}

func TestTranscribeRequiresSource(t *testing.T) {
	svc := whisper.NewService(whisper.Config{})
	if _, err := svc.Transcribe(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestBuildArgsIncludeLanguageWhenKnown(t *testing.T) {
	var captured []string
	svc := whisper.NewService(whisper.Config{Model: "small", Language: "German"})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		captured = append([]string{}, args...)
		dir := outputDirFromArgs(t, args)
		return os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644)
	})

	if _, err := svc.Transcribe(context.Background(), "/drop/a.mp3"); err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	joined := strings.Join(captured, " ")
	if !strings.Contains(joined, "--model small") {
		t.Fatalf("model flag missing: %v", captured)
	}
	if !strings.Contains(joined, "--language de") {
		t.Fatalf("language flag missing: %v", captured)
	}
}

func TestModelAndBinaryDefaults(t *testing.T) {
	svc := whisper.NewService(whisper.Config{})
	if svc.Model() != whisper.DefaultModel {
		t.Fatalf("Model() = %q", svc.Model())
	}
	if svc.Binary() != whisper.DefaultBinary {
		t.Fatalf("Binary() = %q", svc.Binary())
	}
}

func TestAvailableWithStubRunner(t *testing.T) {
	svc := whisper.NewService(whisper.Config{Binary: "definitely-not-installed"})
	svc.WithCommandRunner(func(ctx context.Context, name string, args ...string) error { return nil })
	if err := svc.Available(); err != nil {
		t.Fatalf("stubbed service should always be available: %v", err)
	}
}
