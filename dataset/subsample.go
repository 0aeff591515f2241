package dataset

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/lepinkainen/dataprep/workpool"
)

// FolderSample reports the outcome of subsampling one folder.
type FolderSample struct {
	Folder  string
	Total   int
	Kept    int
	Removed int
	Failed  int // deletions that errored; the files are still on disk
}

// SubsampleTree subsamples the root folder and every descendant directory
// independently: each folder keeps exactly floor(total × keepFraction) of its
// frame images, chosen uniformly without replacement, and the rest are
// deleted on a worker pool. Folders without frame images are skipped and do
// not appear in the results.
//
// keepFraction is not range-checked here; callers validate it before any work
// starts.
func SubsampleTree(root string, keepFraction float64, workers int) ([]FolderSample, error) {
	var folders []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			folders = append(folders, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", root, err)
	}

	var results []FolderSample
	for _, folder := range folders {
		sample, err := SubsampleFolder(folder, keepFraction, workers)
		if err != nil {
			return results, err
		}
		if sample.Total == 0 {
			continue
		}
		results = append(results, sample)
	}

	return results, nil
}

// SubsampleFolder subsamples a single folder. Individual deletion failures
// are reported on the console and counted, never aborting the batch.
func SubsampleFolder(folder string, keepFraction float64, workers int) (FolderSample, error) {
	sample := FolderSample{Folder: folder}

	frames, err := ListFrames(folder)
	if err != nil {
		return sample, err
	}
	sample.Total = len(frames)
	if sample.Total == 0 {
		return sample, nil
	}

	keep := int(float64(sample.Total) * keepFraction)
	doomed := selectRemovals(frames, keep)
	sample.Kept = keep

	tasks := make([]workpool.Task, len(doomed))
	for i, name := range doomed {
		path := filepath.Join(folder, name)
		tasks[i] = func() error { return os.Remove(path) }
	}

	for i, err := range workpool.Run(workers, tasks) {
		if err != nil {
			fmt.Printf("⚠️  Error removing %s: %v\n", filepath.Join(folder, doomed[i]), err)
			sample.Failed++
			continue
		}
		sample.Removed++
	}

	return sample, nil
}

// selectRemovals picks a uniform keep-set of the given size and returns the
// complement, the filenames to delete.
func selectRemovals(frames []string, keep int) []string {
	shuffled := make([]string, len(frames))
	copy(shuffled, frames)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if keep < 0 {
		keep = 0
	}
	if keep > len(shuffled) {
		keep = len(shuffled)
	}
	return shuffled[keep:]
}
