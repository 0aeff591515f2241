package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lepinkainen/dataprep/workpool"
	"github.com/schollz/progressbar/v3"
)

// CombineFolders copies every frame image from every immediate child
// subfolder of root into one flat output folder. Filename collisions get a
// _<n> suffix before the extension, n counting up from 1 until the name is
// free.
//
// Copies run on a worker pool. The free-name check and the copy are not one
// atomic step, so two workers can in principle race for the same candidate
// name; accepted limitation, carried over from the original tooling.
func CombineFolders(root, output string, workers int) (copied, failed int, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read root folder: %w", err)
	}

	if err := os.MkdirAll(output, 0755); err != nil {
		return 0, 0, fmt.Errorf("cannot create output folder: %w", err)
	}

	var sources []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		frames, err := ListFrames(filepath.Join(root, entry.Name()))
		if err != nil {
			return 0, 0, err
		}
		for _, name := range frames {
			sources = append(sources, filepath.Join(root, entry.Name(), name))
		}
	}

	bar := progressbar.NewOptions(len(sources),
		progressbar.OptionSetDescription("Copying files"),
		progressbar.OptionShowCount(),
	)

	tasks := make([]workpool.Task, len(sources))
	for i, src := range sources {
		tasks[i] = func() error {
			defer func() { _ = bar.Add(1) }()
			dst := uniqueDest(output, filepath.Base(src))
			return copyFile(src, dst)
		}
	}

	for i, err := range workpool.Run(workers, tasks) {
		if err != nil {
			fmt.Printf("⚠️  Error copying %s: %v\n", sources[i], err)
			failed++
			continue
		}
		copied++
	}
	_ = bar.Finish()

	return copied, failed, nil
}

// uniqueDest returns dir/name, suffixing _1, _2, … before the extension until
// the destination does not exist yet.
func uniqueDest(dir, name string) string {
	dest := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	base := BaseName(name)

	for counter := 1; ; counter++ {
		if _, err := os.Stat(dest); err != nil {
			return dest
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
}
