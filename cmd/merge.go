package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
	"github.com/lepinkainen/dataprep/utils"
	"github.com/lepinkainen/dataprep/workpool"
)

// MergeCmd flattens the immediate subfolders of a root folder into a single
// output folder, renaming on filename collisions.
type MergeCmd struct {
	Root    string `arg:"" help:"Folder whose subfolders get merged" type:"existingdir"`
	Output  string `arg:"" help:"Destination folder" type:"path"`
	Workers int    `help:"Parallel workers for copies (0 = auto)" default:"0"`
}

func (cmd *MergeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	workers := cmd.Workers
	if workers <= 0 {
		if utils.IsNetworkDrive(cmd.Root) {
			fmt.Printf("⚠️  Network drive detected, using 1 worker for optimal performance\n")
			workers = 1
		} else {
			workers = workpool.DefaultWorkers()
		}
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Folder Merger %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Merging subfolders of %s into %s", cmd.Root, cmd.Output)))

	copied, failed, err := dataset.CombineFolders(cmd.Root, cmd.Output, workers)
	if err != nil {
		return fmt.Errorf("merging failed: %w", err)
	}

	fmt.Println("\n=== Merge Summary ===")
	fmt.Printf("Files copied: %d\n", copied)
	if failed > 0 {
		fmt.Printf("Copies failed: %d\n", failed)
	}
	fmt.Println("=====================")
	fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Merged files saved to %s", cmd.Output)))

	return nil
}
