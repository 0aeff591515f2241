package main

import (
	_ "image/jpeg"

	"github.com/alecthomas/kong"

	"github.com/lepinkainen/dataprep/cmd"
	"github.com/lepinkainen/dataprep/types"
)

var Version = "dev"

type CLI struct {
	Extract   cmd.ExtractCmd   `cmd:"" help:"Extract every nth frame of every video in a folder"`
	Subsample cmd.SubsampleCmd `cmd:"" help:"Randomly keep a fraction of the frames in a folder tree"`
	Cut       cmd.CutCmd       `cmd:"" help:"Keep only the last minutes of a video"`
	Merge     cmd.MergeCmd     `cmd:"" help:"Flatten subfolders into a single folder"`
	Pick      cmd.PickCmd      `cmd:"" help:"Randomly pick image-label pairs into a new folder"`
	Shuffle   cmd.ShuffleCmd   `cmd:"" help:"Shuffle image-label pairs into fixed-size batches"`
	Count     cmd.CountCmd     `cmd:"" help:"Count class IDs in annotation files"`
	Report    cmd.ReportCmd    `cmd:"" help:"Write a filename/label spreadsheet for a folder"`
	Dedupe    cmd.DedupeCmd    `cmd:"" help:"Find and review near-duplicate frames"`

	Version kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dataprep"),
		kong.Description("Prepare video-derived image datasets for training"),
		kong.Vars{"version": Version},
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
