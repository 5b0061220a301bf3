package pipeline_test

import (
	"context"
	"path/filepath"

	"scribe/internal/services/whisper"
)

// stubTranscriber returns canned transcripts keyed by source base name and
// records every call in order.
type stubTranscriber struct {
	calls  []string
	failOn map[string]error
}

func (s *stubTranscriber) Transcribe(_ context.Context, source string) (whisper.Result, error) {
	name := filepath.Base(source)
	s.calls = append(s.calls, name)
	if err, ok := s.failOn[name]; ok {
		return whisper.Result{}, err
	}
	return whisper.Result{Text: "transcript of " + name}, nil
}
