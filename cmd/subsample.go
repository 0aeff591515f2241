package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
	"github.com/lepinkainen/dataprep/utils"
	"github.com/lepinkainen/dataprep/workpool"
)

// SubsampleCmd randomly keeps a fraction of the frame images in a folder tree
// and deletes the rest. Every folder is treated as an independent population.
type SubsampleCmd struct {
	Folder       string  `arg:"" help:"Root folder of extracted frames" type:"existingdir"`
	KeepFraction float64 `short:"k" help:"Fraction of frames to keep per folder" default:"0.8"`
	Workers      int     `help:"Parallel workers for deletions (0 = auto)" default:"0"`
}

func (cmd *SubsampleCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.KeepFraction < 0 || cmd.KeepFraction > 1 {
		return fmt.Errorf("keep fraction must be between 0 and 1, got %g", cmd.KeepFraction)
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Frame Subsampler %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Randomly keeping %.0f%% of frames in every folder under %s", cmd.KeepFraction*100, cmd.Folder)))

	results, err := subsampleTree(cmd.Folder, cmd.KeepFraction, cmd.Workers)
	if err != nil {
		return fmt.Errorf("subsampling failed: %w", err)
	}

	printSubsampleSummary(results)
	return nil
}

// subsampleTree runs the subsampler with the shared worker-count heuristic
func subsampleTree(root string, keepFraction float64, workers int) ([]dataset.FolderSample, error) {
	if workers <= 0 {
		if utils.IsNetworkDrive(root) {
			fmt.Printf("⚠️  Network drive detected, using 1 worker for optimal performance\n")
			workers = 1
		} else {
			workers = workpool.DefaultWorkers()
		}
	}
	return dataset.SubsampleTree(root, keepFraction, workers)
}

func printSubsampleSummary(results []dataset.FolderSample) {
	var total, kept, removed, failed int
	for _, r := range results {
		fmt.Printf("\n%s:\n", r.Folder)
		fmt.Printf("  Total frames: %d\n", r.Total)
		fmt.Printf("  Frames kept: %d\n", r.Kept)
		fmt.Printf("  Frames removed: %d\n", r.Removed)
		if r.Failed > 0 {
			fmt.Printf("  Removals failed: %d\n", r.Failed)
		}
		total += r.Total
		kept += r.Kept
		removed += r.Removed
		failed += r.Failed
	}

	fmt.Println("\n=== Frame Selection Summary ===")
	fmt.Printf("Folders processed: %d\n", len(results))
	fmt.Printf("Total frames: %d\n", total)
	fmt.Printf("Frames kept: %d\n", kept)
	fmt.Printf("Frames removed: %d\n", removed)
	if failed > 0 {
		fmt.Printf("Removals failed: %d\n", failed)
	}
	fmt.Println("===============================")
}
