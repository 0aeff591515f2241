package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
)

// CountCmd tallies the class IDs found in the annotation files of a folder.
type CountCmd struct {
	Folder string `arg:"" help:"Folder containing .txt annotation files" type:"existingdir"`
}

func (cmd *CountCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Class Counter %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Counting class IDs in %s", cmd.Folder)))

	counts, err := dataset.CountClassIDs(cmd.Folder)
	if err != nil {
		return fmt.Errorf("counting failed: %w", err)
	}

	rows := dataset.SortedCounts(counts)
	if len(rows) == 0 {
		fmt.Println(ui.InfoStyle.Render("No class IDs found"))
		return nil
	}

	total := 0
	fmt.Println("\n=== Class ID Counts ===")
	for _, row := range rows {
		fmt.Printf("Class %s: %d\n", row.ID, row.Count)
		total += row.Count
	}
	fmt.Println("=======================")
	fmt.Printf("Total annotations: %d\n", total)

	return nil
}
