package main

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"scribe/internal/config"
	"scribe/internal/dropbox"
	"scribe/internal/history"
	"scribe/internal/logging"
	"scribe/internal/notifications"
	"scribe/internal/pipeline"
	"scribe/internal/services"
	"scribe/internal/services/whisper"
)

const summaryRounding = 100 * time.Millisecond

func newDrainCommand(ctx *commandContext) *cobra.Command {
	var modelFlag string
	var baseDirFlag string
	var languageFlag string

	cmd := &cobra.Command{
		Use:   "drain",
		Short: "Transcribe everything currently in the dropbox",
		Long: "Drain classifies every entry in the dropbox directory, transcribes " +
			"single audio files and ordered collections, and archives completed " +
			"sources. A failure on one item never aborts the pass.",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := config.Overrides{
				BaseDir:  baseDirFlag,
				Model:    modelFlag,
				Language: languageFlag,
			}
			return runDrain(cmd, ctx, overrides)
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Whisper model size (tiny, base, small, medium, large)")
	cmd.Flags().StringVar(&baseDirFlag, "base-dir", "", "Base directory for dropbox, output, and processed")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Transcription language hint")
	return cmd
}

func runDrain(cmd *cobra.Command, ctx *commandContext, overrides config.Overrides) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "scribe.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return errors.New("another scribe drain is already running")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	transcriber := whisper.NewService(whisper.Config{
		Binary:   cfg.WhisperBinary(),
		Model:    cfg.Whisper.Model,
		Language: cfg.Whisper.Language,
	})
	if err := transcriber.Available(); err != nil {
		return services.Wrap(services.ErrExternalTool, "drain", "preflight", "transcription engine unavailable", err)
	}

	var recorder pipeline.Recorder
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("history ledger unavailable", logging.Error(err))
		} else {
			defer store.Close()
			recorder = store
		}
	}

	notifier := notifications.NewService(cfg)
	if items, err := dropbox.List(cfg.Paths.DropboxDir); err == nil && len(items) > 0 {
		if nerr := notifier.NotifyRunStarted(signalCtx, len(items)); nerr != nil {
			logger.Warn("notify run start", logging.Error(nerr))
		}
	}

	drain := pipeline.NewDrain(cfg, transcriber, logger, recorder)
	summary, err := drain.Run(signalCtx)
	if err != nil {
		if nerr := notifier.NotifyError(signalCtx, err, "drain"); nerr != nil {
			logger.Warn("notify error", logging.Error(nerr))
		}
		return err
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Err == nil {
			continue
		}
		if nerr := notifier.NotifyError(signalCtx, outcome.Err, notifications.DisplayTitle(outcome.Item)); nerr != nil {
			logger.Warn("notify error", logging.Error(nerr))
		}
	}
	if summary.Total() > 0 {
		if nerr := notifier.NotifyRunCompleted(signalCtx, summary.Processed, summary.Failed, summary.Elapsed); nerr != nil {
			logger.Warn("notify run completion", logging.Error(nerr))
		}
	}

	printDrainSummary(cmd.OutOrStdout(), summary)
	return nil
}

func printDrainSummary(out io.Writer, summary pipeline.Summary) {
	if summary.Total() == 0 {
		fmt.Fprintln(out, "Dropbox is empty; nothing to do")
		return
	}

	rows := make([][]string, 0, summary.Total())
	for _, outcome := range summary.Outcomes {
		detail := outcome.OutputPath
		if outcome.Err != nil {
			detail = outcome.Err.Error()
		}
		rows = append(rows, []string{
			outcome.Item,
			outcome.Kind.String(),
			outcome.Status.String(),
			formatParts(outcome.PartsCompleted, outcome.PartsTotal),
			detail,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Item", "Kind", "Status", "Parts", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "Drain complete: %d processed, %d skipped, %d failed, %d unsupported, %d empty (%s)\n",
		summary.Processed, summary.Skipped, summary.Failed, summary.Unsupported, summary.Empty,
		summary.Elapsed.Round(summaryRounding))
}

func formatParts(completed, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", completed, total)
}
