package cmd

import (
	"fmt"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
)

// ReportCmd writes a spreadsheet listing every file of a folder with the
// label derived from its filename.
type ReportCmd struct {
	Folder string `arg:"" help:"Folder to report on" type:"existingdir"`
	Output string `short:"o" help:"Workbook path" type:"path" default:"file_labels.xlsx"`
}

func (cmd *ReportCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Label Reporter %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Scanning %s", cmd.Folder)))

	records, err := dataset.ScanFolder(cmd.Folder)
	if err != nil {
		return fmt.Errorf("scanning failed: %w", err)
	}
	if len(records) == 0 {
		fmt.Println(ui.InfoStyle.Render("No files found, nothing to report"))
		return nil
	}

	if err := dataset.WriteWorkbook(records, cmd.Output); err != nil {
		return fmt.Errorf("writing workbook failed: %w", err)
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %d rows written to %s", len(records), cmd.Output)))
	return nil
}
