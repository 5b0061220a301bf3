package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"scribe/internal/config"
	"scribe/internal/dropbox"
	"scribe/internal/fileutil"
	"scribe/internal/logging"
	"scribe/internal/naming"
	"scribe/internal/services"
)

// Single transcribes exactly one audio file and archives it.
type Single struct {
	outputDir    string
	processedDir string
	transcriber  Transcriber
	logger       *slog.Logger
	now          func() time.Time
}

// NewSingle creates the single-item processor.
func NewSingle(cfg *config.Config, transcriber Transcriber, logger *slog.Logger) *Single {
	return &Single{
		outputDir:    cfg.Paths.OutputDir,
		processedDir: cfg.Paths.ProcessedDir,
		transcriber:  transcriber,
		logger:       logging.NewComponentLogger(logger, "single"),
		now:          time.Now,
	}
}

// Process drives sourcePath through transcription and archival. Re-runs are
// idempotent: an existing output artifact short-circuits transcription but
// still attempts the archival move, so a file left behind by a partial prior
// run converges.
func (p *Single) Process(ctx context.Context, sourcePath string) Outcome {
	outcome := Outcome{
		Item:      filepath.Base(sourcePath),
		Path:      sourcePath,
		Kind:      dropbox.KindSingleAudio,
		StartedAt: p.now(),
	}
	defer func() { outcome.FinishedAt = p.now() }()

	if _, err := os.Stat(sourcePath); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrSourceMissing, "single", "stat source", outcome.Item, err)
		return outcome
	}

	outcome.OutputPath = naming.TranscriptPath(p.outputDir, sourcePath)
	if _, err := os.Stat(outcome.OutputPath); err == nil {
		p.logger.Info("output artifact already exists, skipping transcription",
			logging.String(logging.FieldItem, outcome.Item),
			logging.String("output", outcome.OutputPath),
		)
		outcome.Status = StatusSkipped
		p.archive(&outcome)
		return outcome
	}

	p.logger.Info("transcribing file", logging.String(logging.FieldItem, outcome.Item))
	result, err := p.transcriber.Transcribe(ctx, sourcePath)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrTranscription, "single", "transcribe", outcome.Item, err)
		return outcome
	}

	if err := os.WriteFile(outcome.OutputPath, []byte(result.Text), 0o644); err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrTranscription, "single", "write transcript", outcome.Item, err)
		return outcome
	}
	p.logger.Info("transcript written",
		logging.String(logging.FieldItem, outcome.Item),
		logging.String("output", outcome.OutputPath),
	)

	outcome.Status = StatusSuccess
	p.archive(&outcome)
	return outcome
}

// archive moves the source into the processed directory under a
// collision-safe name. Failure is reported but does not demote the outcome;
// the transcript is already complete and a re-run will retry the move.
func (p *Single) archive(outcome *Outcome) {
	dest := naming.ArchivePath(p.processedDir, outcome.Path, p.now())
	if err := fileutil.MovePath(outcome.Path, dest); err != nil {
		outcome.Err = services.Wrap(services.ErrArchival, "single", "archive source", outcome.Item, err)
		p.logger.Error("archival move failed, source left in dropbox",
			logging.String(logging.FieldItem, outcome.Item),
			logging.Error(err),
		)
		return
	}
	outcome.ArchivePath = dest
	p.logger.Info("source archived",
		logging.String(logging.FieldItem, outcome.Item),
		logging.String("archive", dest),
	)
}
