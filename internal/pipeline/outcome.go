package pipeline

import (
	"context"
	"time"

	"scribe/internal/dropbox"
	"scribe/internal/history"
	"scribe/internal/services/whisper"
)

// Transcriber is the synchronous transcription capability the processors
// drive. *whisper.Service satisfies it.
type Transcriber interface {
	Transcribe(ctx context.Context, source string) (whisper.Result, error)
}

// Status is the terminal state of one processed dropbox item.
type Status int

const (
	// StatusSuccess means the item was transcribed in this run.
	StatusSuccess Status = iota
	// StatusSkipped means the output artifact already existed; the item is
	// treated as done without invoking transcription.
	StatusSkipped
	// StatusFailed means the item failed and remains in the dropbox.
	StatusFailed
	// StatusUnsupported means the entry is not something the pipeline handles.
	StatusUnsupported
	// StatusEmpty means a collection contained no recognized audio parts.
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "empty"
	}
}

// Outcome is the result of running one job. Err may be set alongside
// StatusSuccess or StatusSkipped when the post-success archival move failed;
// the transcript is complete in that case but the source stays in place.
type Outcome struct {
	Item           string
	Path           string
	Kind           dropbox.Kind
	Status         Status
	PartsCompleted int
	PartsTotal     int
	OutputPath     string
	ArchivePath    string
	Err            error
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Duration returns the wall time spent on this item.
func (o Outcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}

// Entry converts the outcome into a history ledger entry for runID.
func (o Outcome) Entry(runID string) history.Entry {
	entry := history.Entry{
		RunID:          runID,
		Item:           o.Item,
		Kind:           o.Kind.String(),
		Status:         o.Status.String(),
		PartsCompleted: o.PartsCompleted,
		PartsTotal:     o.PartsTotal,
		OutputPath:     o.OutputPath,
		ArchivePath:    o.ArchivePath,
		StartedAt:      o.StartedAt,
		FinishedAt:     o.FinishedAt,
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}
	return entry
}
