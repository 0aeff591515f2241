package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
)

// ShuffleCmd shuffles the image-label pairs of a dataset and splits them into
// fixed-size batch folders.
type ShuffleCmd struct {
	Input     string `arg:"" help:"Folder with images/ and labels/ subfolders" type:"existingdir"`
	Output    string `arg:"" help:"Destination folder for batch folders" type:"path"`
	BatchSize int    `short:"b" help:"Pairs per batch" default:"500"`
	LogFile   string `help:"Also write logs to this file" type:"path"`
}

func (cmd *ShuffleCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", cmd.BatchSize)
	}

	logger, cleanup, err := cmd.buildLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Dataset Shuffler %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Shuffling %s into batches of %d", cmd.Input, cmd.BatchSize)))

	pairs, err := dataset.CollectPairs(cmd.Input, logger)
	if err != nil {
		return fmt.Errorf("collecting pairs failed: %w", err)
	}
	if len(pairs) == 0 {
		fmt.Println(ui.InfoStyle.Render("No image-label pairs found, nothing to do"))
		return nil
	}

	batches := dataset.SplitIntoBatches(pairs, cmd.BatchSize)
	logger.Info("batches planned", "count", len(batches))

	if err := dataset.CopyBatches(batches, cmd.Output, logger); err != nil {
		return fmt.Errorf("copying batches failed: %w", err)
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %d pairs shuffled into %d batches under %s", len(pairs), len(batches), cmd.Output)))
	return nil
}

// buildLogger sets up a tinted console logger, teeing into a log file when one
// was requested
func (cmd *ShuffleCmd) buildLogger() (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	cleanup := func() {}

	if cmd.LogFile != "" {
		f, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		TimeFormat: time.Kitchen,
	}))
	return logger, cleanup, nil
}
