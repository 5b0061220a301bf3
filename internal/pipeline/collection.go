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

// Collection transcribes an ordered set of parts into one aggregate
// transcript and archives the source directory as a unit.
type Collection struct {
	outputDir    string
	processedDir string
	transcriber  Transcriber
	logger       *slog.Logger
	now          func() time.Time
}

// NewCollection creates the collection processor.
func NewCollection(cfg *config.Config, transcriber Transcriber, logger *slog.Logger) *Collection {
	return &Collection{
		outputDir:    cfg.Paths.OutputDir,
		processedDir: cfg.Paths.ProcessedDir,
		transcriber:  transcriber,
		logger:       logging.NewComponentLogger(logger, "collection"),
		now:          time.Now,
	}
}

// sectionHeader precedes each part's transcript in the aggregate output.
func sectionHeader(partName string) string {
	return "\n\n--- Chapter/Part: " + partName + " ---\n\n"
}

// Process transcribes every part of dirPath in name order into one aggregate
// artifact. The aggregate is written under a .partial name and renamed only
// on full success, so a completed transcript is never confusable with an
// interrupted one. The source directory is archived if and only if every
// part succeeded in this run.
func (p *Collection) Process(ctx context.Context, dirPath string) Outcome {
	outcome := Outcome{
		Item:      filepath.Base(filepath.Clean(dirPath)),
		Path:      dirPath,
		Kind:      dropbox.KindCollection,
		StartedAt: p.now(),
	}
	defer func() { outcome.FinishedAt = p.now() }()

	parts, err := dropbox.ListParts(dirPath)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrSourceMissing, "collection", "list parts", outcome.Item, err)
		return outcome
	}
	outcome.PartsTotal = len(parts)

	if len(parts) == 0 {
		p.logger.Warn("no audio files found in collection",
			logging.String(logging.FieldItem, outcome.Item),
		)
		outcome.Status = StatusEmpty
		return outcome
	}

	// Part order is fixed here; nothing below re-sorts.
	finalPath := naming.AggregatePath(p.outputDir, dirPath, p.now())
	partialPath := finalPath + naming.PartialSuffix
	outcome.OutputPath = finalPath

	out, err := os.OpenFile(partialPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrTranscription, "collection", "create aggregate", outcome.Item, err)
		return outcome
	}

	for i, part := range parts {
		partName := filepath.Base(part)
		p.logger.Info("transcribing collection part",
			logging.String(logging.FieldItem, outcome.Item),
			logging.String("part", partName),
			logging.Int("index", i+1),
			logging.Int("total", len(parts)),
		)

		result, err := p.transcriber.Transcribe(ctx, part)
		if err != nil {
			// Stop at the first failure. The partial aggregate stays on
			// disk under its .partial name; a re-run starts fresh with a
			// new stamp.
			_ = out.Close()
			outcome.OutputPath = partialPath
			outcome.Status = StatusFailed
			outcome.Err = services.Wrap(services.ErrTranscription, "collection", "transcribe part", partName, err)
			return outcome
		}

		if _, err := out.WriteString(sectionHeader(partName) + result.Text); err != nil {
			_ = out.Close()
			outcome.OutputPath = partialPath
			outcome.Status = StatusFailed
			outcome.Err = services.Wrap(services.ErrTranscription, "collection", "append section", partName, err)
			return outcome
		}
		outcome.PartsCompleted = i + 1
	}

	if err := out.Close(); err != nil {
		outcome.OutputPath = partialPath
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrTranscription, "collection", "close aggregate", outcome.Item, err)
		return outcome
	}
	if err := os.Rename(partialPath, finalPath); err != nil {
		outcome.OutputPath = partialPath
		outcome.Status = StatusFailed
		outcome.Err = services.Wrap(services.ErrTranscription, "collection", "finalize aggregate", outcome.Item, err)
		return outcome
	}

	p.logger.Info("collection transcript complete",
		logging.String(logging.FieldItem, outcome.Item),
		logging.Int("parts", outcome.PartsCompleted),
		logging.String("output", finalPath),
	)

	outcome.Status = StatusSuccess
	dest := naming.ArchivePath(p.processedDir, dirPath, p.now())
	if err := fileutil.MovePath(dirPath, dest); err != nil {
		outcome.Err = services.Wrap(services.ErrArchival, "collection", "archive directory", outcome.Item, err)
		p.logger.Error("archival move failed, directory left in dropbox",
			logging.String(logging.FieldItem, outcome.Item),
			logging.Error(err),
		)
		return outcome
	}
	outcome.ArchivePath = dest
	p.logger.Info("collection archived",
		logging.String(logging.FieldItem, outcome.Item),
		logging.String("archive", dest),
	)
	return outcome
}
