package dataset

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/schollz/progressbar/v3"
)

// FindNearDuplicates computes a perceptual hash for every frame image in dir
// and groups files whose pairwise Hamming distance is within threshold.
// Grouping is greedy in directory order: a file joins the first group whose
// anchor it is close to. Only groups with at least two files are returned.
// Images that fail to decode are reported and skipped.
func FindNearDuplicates(dir string, threshold int) ([][]string, error) {
	frames, err := ListFrames(dir)
	if err != nil {
		return nil, err
	}

	type frameHash struct {
		path string
		hash *goimagehash.ImageHash
	}

	bar := progressbar.NewOptions(len(frames),
		progressbar.OptionSetDescription("Hashing frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	var hashes []frameHash
	for _, name := range frames {
		path := filepath.Join(dir, name)
		hash, err := hashImage(path)
		if err != nil {
			fmt.Printf("⚠️  Skipping %s: %v\n", name, err)
			_ = bar.Add(1)
			continue
		}
		hashes = append(hashes, frameHash{path: path, hash: hash})
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	grouped := make([]bool, len(hashes))
	var groups [][]string

	for i := range hashes {
		if grouped[i] {
			continue
		}
		group := []string{hashes[i].path}
		for j := i + 1; j < len(hashes); j++ {
			if grouped[j] {
				continue
			}
			distance, err := hashes[i].hash.Distance(hashes[j].hash)
			if err != nil {
				continue
			}
			if distance <= threshold {
				group = append(group, hashes[j].path)
				grouped[j] = true
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}

// hashImage calculates the perceptual hash of one image file
func hashImage(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	return goimagehash.PerceptionHash(img)
}

// RemoveDuplicates deletes every file of each group except the first,
// returning the number removed. Deletion failures are reported and skipped.
func RemoveDuplicates(groups [][]string) int {
	removed := 0
	for _, group := range groups {
		for _, path := range group[1:] {
			if err := os.Remove(path); err != nil {
				fmt.Printf("⚠️  Error removing %s: %v\n", path, err)
				continue
			}
			removed++
		}
	}
	return removed
}
