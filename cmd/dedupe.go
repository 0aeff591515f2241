package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/dataprep/dataset"
	"github.com/lepinkainen/dataprep/types"
	"github.com/lepinkainen/dataprep/ui"
)

// DedupeCmd finds near-duplicate frames in a folder by perceptual hash and
// reviews them in a TUI, or removes them outright with --delete.
type DedupeCmd struct {
	Folder    string `arg:"" help:"Folder of extracted frames" type:"existingdir"`
	Threshold int    `short:"t" help:"Maximum hash distance to treat frames as duplicates" default:"10"`
	NoTUI     bool   `help:"List duplicate groups without the interactive review"`
	Delete    bool   `help:"Remove all but the first frame of every group without asking"`
}

func (cmd *DedupeCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", cmd.Threshold)
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("Duplicate Finder %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Hashing frames in %s (threshold %d)", cmd.Folder, cmd.Threshold)))

	groups, err := dataset.FindNearDuplicates(cmd.Folder, cmd.Threshold)
	if err != nil {
		return fmt.Errorf("duplicate detection failed: %w", err)
	}

	if len(groups) == 0 {
		fmt.Println(ui.SuccessStyle.Render("✅ No near-duplicate frames found"))
		return nil
	}

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d duplicate groups", len(groups))))

	if cmd.Delete {
		removed := dataset.RemoveDuplicates(groups)
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Removed %d duplicate frames", removed)))
		return nil
	}

	if cmd.NoTUI {
		for i, group := range groups {
			fmt.Printf("\nGroup %d:\n", i+1)
			for _, file := range group {
				fmt.Printf("  %s\n", file)
			}
		}
		return nil
	}

	program := tea.NewProgram(ui.NewReviewModel(groups), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("review TUI failed: %w", err)
	}

	return nil
}
