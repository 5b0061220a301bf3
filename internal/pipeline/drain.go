package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"scribe/internal/config"
	"scribe/internal/dropbox"
	"scribe/internal/history"
	"scribe/internal/logging"
)

// Recorder persists item outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) (int64, error)
}

// Summary aggregates the result of one drain pass.
type Summary struct {
	RunID       string
	Processed   int
	Skipped     int
	Failed      int
	Unsupported int
	Empty       int
	Outcomes    []Outcome
	StartedAt   time.Time
	Elapsed     time.Duration
}

// Total returns the number of entries seen in this pass.
func (s Summary) Total() int {
	return len(s.Outcomes)
}

// Drain performs one full pass over the dropbox directory: enumerate once,
// classify each entry, and dispatch it to the matching processor.
type Drain struct {
	dropboxDir string
	single     *Single
	collection *Collection
	recorder   Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewDrain wires the drain pipeline. The transcriber is shared by both
// processors so the engine is set up once per run. recorder may be nil when
// the history ledger is disabled.
func NewDrain(cfg *config.Config, transcriber Transcriber, logger *slog.Logger, recorder Recorder) *Drain {
	return &Drain{
		dropboxDir: cfg.Paths.DropboxDir,
		single:     NewSingle(cfg, transcriber, logger),
		collection: NewCollection(cfg, transcriber, logger),
		recorder:   recorder,
		logger:     logging.NewComponentLogger(logger, "drain"),
		now:        time.Now,
	}
}

// Run drains whatever is present in the dropbox at enumeration time. Items
// added afterwards wait for the next invocation. A failure on one entry
// never aborts the pass; the only errors returned are a failed enumeration
// and context cancellation between items.
func (d *Drain) Run(ctx context.Context) (Summary, error) {
	summary := Summary{
		RunID:     uuid.NewString(),
		StartedAt: d.now(),
	}
	logger := d.logger.With(logging.String(logging.FieldRunID, summary.RunID))

	items, err := dropbox.List(d.dropboxDir)
	if err != nil {
		return summary, fmt.Errorf("enumerate dropbox: %w", err)
	}
	if len(items) == 0 {
		logger.Info("no items found in dropbox")
		summary.Elapsed = d.now().Sub(summary.StartedAt)
		return summary, nil
	}

	logger.Info("draining dropbox", logging.Int("items", len(items)))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = d.now().Sub(summary.StartedAt)
			return summary, err
		}

		var outcome Outcome
		switch item.Kind {
		case dropbox.KindSingleAudio:
			outcome = d.single.Process(ctx, item.Path)
		case dropbox.KindCollection:
			logger.Info("processing directory as collection", logging.String(logging.FieldItem, item.Name))
			outcome = d.collection.Process(ctx, item.Path)
		default:
			logger.Info("skipping unsupported item", logging.String(logging.FieldItem, item.Name))
			now := d.now()
			outcome = Outcome{
				Item:       item.Name,
				Path:       item.Path,
				Kind:       item.Kind,
				Status:     StatusUnsupported,
				StartedAt:  now,
				FinishedAt: now,
			}
		}

		d.tally(&summary, outcome)
		d.record(ctx, logger, summary.RunID, outcome)

		if outcome.Err != nil {
			logger.Error("item finished with error",
				logging.String(logging.FieldItem, outcome.Item),
				logging.String("status", outcome.Status.String()),
				logging.Int("parts_completed", outcome.PartsCompleted),
				logging.Error(outcome.Err),
			)
		}
	}

	summary.Elapsed = d.now().Sub(summary.StartedAt)
	logger.Info("drain pass complete",
		logging.Int("processed", summary.Processed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Int("unsupported", summary.Unsupported),
		logging.Int("empty", summary.Empty),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

func (d *Drain) tally(summary *Summary, outcome Outcome) {
	summary.Outcomes = append(summary.Outcomes, outcome)
	switch outcome.Status {
	case StatusSuccess:
		summary.Processed++
	case StatusSkipped:
		summary.Skipped++
	case StatusFailed:
		summary.Failed++
	case StatusUnsupported:
		summary.Unsupported++
	case StatusEmpty:
		summary.Empty++
	}
}

// record persists the outcome when a ledger is configured. Ledger failures
// are logged and swallowed; they must not affect the pass.
func (d *Drain) record(ctx context.Context, logger *slog.Logger, runID string, outcome Outcome) {
	if d.recorder == nil {
		return
	}
	if _, err := d.recorder.Record(ctx, outcome.Entry(runID)); err != nil {
		logger.Warn("failed to record history entry",
			logging.String(logging.FieldItem, outcome.Item),
			logging.Error(err),
		)
	}
}
