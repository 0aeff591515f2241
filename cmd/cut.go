package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
	"github.com/lepinkainen/dataprep/utils"
	"github.com/lepinkainen/dataprep/video"
)

// CutCmd keeps only the final minutes of a video, re-encoding the tail into a
// new file.
type CutCmd struct {
	Input   string  `arg:"" help:"Video file to trim" type:"existingfile"`
	Output  string  `arg:"" help:"Path of the trimmed video" type:"path"`
	Minutes float64 `short:"m" help:"Minutes to keep from the end" default:"15"`
}

func (cmd *CutCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.Minutes <= 0 {
		return fmt.Errorf("minutes must be positive, got %g", cmd.Minutes)
	}
	if err := utils.ValidateFFmpegDependencies(); err != nil {
		return err
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Video Trimmer %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Keeping the last %g minutes of %s", cmd.Minutes, cmd.Input)))

	if err := video.TrimTail(cmd.Input, cmd.Output, cmd.Minutes); err != nil {
		return fmt.Errorf("trimming failed: %w", err)
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Trimmed video saved to %s", cmd.Output)))
	return nil
}
