package dataset

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// PickPairs copies a random floor(total × ratio) selection of images from
// imagesDir, together with their .txt labels from labelsDir, into
// outputDir/images and outputDir/labels. Images whose label file is missing
// are selected but silently not copied, matching the original tooling.
// Returns the number of pairs actually copied.
func PickPairs(imagesDir, labelsDir, outputDir string, ratio float64) (int, error) {
	outputImages := filepath.Join(outputDir, "images")
	outputLabels := filepath.Join(outputDir, "labels")
	for _, dir := range []string{outputImages, outputLabels} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("cannot create output folder: %w", err)
		}
	}

	images, err := ListFrames(imagesDir)
	if err != nil {
		return 0, err
	}

	rand.Shuffle(len(images), func(i, j int) {
		images[i], images[j] = images[j], images[i]
	})
	selected := images[:int(float64(len(images))*ratio)]

	bar := progressbar.NewOptions(len(selected),
		progressbar.OptionSetDescription("Copying files"),
		progressbar.OptionShowCount(),
	)

	copied := 0
	for _, name := range selected {
		labelName := BaseName(name) + ".txt"
		imageSrc := filepath.Join(imagesDir, name)
		labelSrc := filepath.Join(labelsDir, labelName)

		if _, err := os.Stat(labelSrc); err != nil {
			_ = bar.Add(1)
			continue
		}

		if err := copyFile(imageSrc, filepath.Join(outputImages, name)); err != nil {
			return copied, fmt.Errorf("cannot copy %s: %w", imageSrc, err)
		}
		if err := copyFile(labelSrc, filepath.Join(outputLabels, labelName)); err != nil {
			return copied, fmt.Errorf("cannot copy %s: %w", labelSrc, err)
		}

		copied++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return copied, nil
}
