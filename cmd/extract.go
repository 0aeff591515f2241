package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
	"github.com/lepinkainen/dataprep/utils"
	"github.com/lepinkainen/dataprep/video"
)

// ExtractCmd extracts every nth frame of every video in a folder into
// per-video frame folders, optionally followed by a random subsampling pass
// over the extracted frames.
type ExtractCmd struct {
	InputFolder  string  `arg:"" name:"input-folder" help:"Folder containing input videos" type:"existingdir"`
	OutputFolder string  `arg:"" name:"output-folder" help:"Folder to save extracted frames" type:"path"`
	Interval     int     `short:"n" help:"Keep every nth frame" required:""`
	RandomSelect bool    `short:"r" help:"Randomly subsample extracted frames afterwards"`
	KeepFraction float64 `short:"k" help:"Fraction of frames to keep when subsampling" default:"0.8"`
	Workers      int     `help:"Parallel workers for the subsampling stage (0 = auto)" default:"0"`
}

func (cmd *ExtractCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.Interval < 1 {
		return fmt.Errorf("interval must be at least 1, got %d", cmd.Interval)
	}
	if cmd.KeepFraction < 0 || cmd.KeepFraction > 1 {
		return fmt.Errorf("keep fraction must be between 0 and 1, got %g", cmd.KeepFraction)
	}
	if err := utils.ValidateFFmpegDependencies(); err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Frame Extractor %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Extracting every %d. frame from %s", cmd.Interval, cmd.InputFolder)))

	stats, err := video.ExtractFrames(cmd.InputFolder, cmd.OutputFolder, cmd.Interval)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	fmt.Printf("\n%s\n", stats.Summary())
	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Frames saved to %s", cmd.OutputFolder)))

	if !cmd.RandomSelect {
		return nil
	}

	fmt.Printf("\n%s\n", ui.ProcessingStyle.Render(fmt.Sprintf("Randomly keeping %.0f%% of frames in every folder...", cmd.KeepFraction*100)))

	results, err := subsampleTree(cmd.OutputFolder, cmd.KeepFraction, cmd.Workers)
	if err != nil {
		return fmt.Errorf("subsampling failed: %w", err)
	}

	printSubsampleSummary(results)
	return nil
}
