package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
)

// PickCmd randomly selects a fraction of the images in a folder and copies
// them, together with their label files, into an output folder.
type PickCmd struct {
	Images string  `arg:"" help:"Folder containing images" type:"existingdir"`
	Labels string  `arg:"" help:"Folder containing label files" type:"existingdir"`
	Output string  `arg:"" help:"Destination folder" type:"path"`
	Ratio  float64 `short:"r" help:"Fraction of images to pick" default:"0.5"`
}

func (cmd *PickCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.Ratio < 0 || cmd.Ratio > 1 {
		return fmt.Errorf("ratio must be between 0 and 1, got %g", cmd.Ratio)
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Pair Picker %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Randomly picking %.0f%% of images from %s", cmd.Ratio*100, cmd.Images)))

	picked, err := dataset.PickPairs(cmd.Images, cmd.Labels, cmd.Output, cmd.Ratio)
	if err != nil {
		return fmt.Errorf("picking failed: %w", err)
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Copied %d images with labels to %s", picked, cmd.Output)))
	return nil
}
