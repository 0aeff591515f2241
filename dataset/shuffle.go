package dataset

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// Pair is an image file and its label file, joined on base name.
type Pair struct {
	Image string
	Label string
}

// CollectPairs pairs files from inputDir/images and inputDir/labels by base
// name. Images without a matching label are counted and skipped with a
// warning.
func CollectPairs(inputDir string, logger *slog.Logger) ([]Pair, error) {
	imagesDir := filepath.Join(inputDir, "images")
	labelsDir := filepath.Join(inputDir, "labels")

	images, err := ListByExtension(imagesDir, ImageExtensions)
	if err != nil {
		return nil, err
	}
	labels, err := ListByExtension(labelsDir, LabelExtensions)
	if err != nil {
		return nil, err
	}

	labelByBase := make(map[string]string, len(labels))
	for _, name := range labels {
		labelByBase[BaseName(name)] = name
	}

	var pairs []Pair
	missing := 0
	for _, name := range images {
		label, ok := labelByBase[BaseName(name)]
		if !ok {
			missing++
			continue
		}
		pairs = append(pairs, Pair{
			Image: filepath.Join(imagesDir, name),
			Label: filepath.Join(labelsDir, label),
		})
	}

	if missing > 0 {
		logger.Warn("images without labels skipped", "count", missing)
	}
	logger.Info("image-label pairs found", "count", len(pairs))

	return pairs, nil
}

// SplitIntoBatches shuffles the pairs and splits them into consecutive
// batches of at most batchSize. Only the final batch may be short.
func SplitIntoBatches(pairs []Pair, batchSize int) [][]Pair {
	shuffled := make([]Pair, len(pairs))
	copy(shuffled, pairs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var batches [][]Pair
	for start := 0; start < len(shuffled); start += batchSize {
		end := start + batchSize
		if end > len(shuffled) {
			end = len(shuffled)
		}
		batches = append(batches, shuffled[start:end])
	}

	return batches
}

// CopyBatches copies each batch into outputDir/batch_<n>/{images,labels}.
// Per-pair copy failures are logged and skipped.
func CopyBatches(batches [][]Pair, outputDir string, logger *slog.Logger) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	for i, batch := range batches {
		batchName := fmt.Sprintf("batch_%d", i+1)
		imagesDir := filepath.Join(outputDir, batchName, "images")
		labelsDir := filepath.Join(outputDir, batchName, "labels")
		for _, dir := range []string{imagesDir, labelsDir} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("cannot create batch folder %s: %w", dir, err)
			}
		}

		logger.Info("copying batch", "batch", batchName, "pairs", len(batch))

		for _, pair := range batch {
			if err := copyFile(pair.Image, filepath.Join(imagesDir, filepath.Base(pair.Image))); err != nil {
				logger.Error("copy failed", "file", pair.Image, "error", err)
				continue
			}
			if err := copyFile(pair.Label, filepath.Join(labelsDir, filepath.Base(pair.Label))); err != nil {
				logger.Error("copy failed", "file", pair.Label, "error", err)
			}
		}
	}

	return nil
}
