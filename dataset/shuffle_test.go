package dataset

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeDatasetFixture(t *testing.T, pairs, extraImages int) string {
	t.Helper()
	root := t.TempDir()
	imagesDir := filepath.Join(root, "images")
	labelsDir := filepath.Join(root, "labels")
	for _, dir := range []string{imagesDir, labelsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create fixture dir: %v", err)
		}
	}

	for i := 0; i < pairs+extraImages; i++ {
		img := filepath.Join(imagesDir, fmt.Sprintf("sample_%04d.png", i))
		if err := os.WriteFile(img, []byte("img"), 0644); err != nil {
			t.Fatalf("Failed to create fixture image: %v", err)
		}
		if i < pairs {
			lbl := filepath.Join(labelsDir, fmt.Sprintf("sample_%04d.txt", i))
			if err := os.WriteFile(lbl, []byte("1 0.5 0.5 0.1 0.1"), 0644); err != nil {
				t.Fatalf("Failed to create fixture label: %v", err)
			}
		}
	}
	return root
}

func TestCollectPairs(t *testing.T) {
	root := makeDatasetFixture(t, 6, 2)

	pairs, err := CollectPairs(root, discardLogger())
	if err != nil {
		t.Fatalf("CollectPairs() error = %v", err)
	}
	if len(pairs) != 6 {
		t.Errorf("len(pairs) = %d, want 6 (unlabeled images skipped)", len(pairs))
	}

	for _, pair := range pairs {
		if BaseName(filepath.Base(pair.Image)) != BaseName(filepath.Base(pair.Label)) {
			t.Errorf("mismatched pair: %s / %s", pair.Image, pair.Label)
		}
	}
}

func TestCollectPairs_MissingImagesDir(t *testing.T) {
	if _, err := CollectPairs(t.TempDir(), discardLogger()); err == nil {
		t.Error("CollectPairs() without images dir should return an error")
	}
}

func TestSplitIntoBatches(t *testing.T) {
	pairs := make([]Pair, 1050)
	for i := range pairs {
		pairs[i] = Pair{Image: fmt.Sprintf("i%d", i), Label: fmt.Sprintf("l%d", i)}
	}

	batches := SplitIntoBatches(pairs, 500)

	if len(batches) != 3 {
		t.Fatalf("len(batches) = %d, want 3", len(batches))
	}
	for i, want := range []int{500, 500, 50} {
		if len(batches[i]) != want {
			t.Errorf("len(batches[%d]) = %d, want %d", i, len(batches[i]), want)
		}
	}

	// every pair lands in exactly one batch
	seen := map[string]bool{}
	for _, batch := range batches {
		for _, pair := range batch {
			if seen[pair.Image] {
				t.Errorf("pair %s appears twice", pair.Image)
			}
			seen[pair.Image] = true
		}
	}
	if len(seen) != len(pairs) {
		t.Errorf("batched %d distinct pairs, want %d", len(seen), len(pairs))
	}
}

func TestSplitIntoBatches_Empty(t *testing.T) {
	if batches := SplitIntoBatches(nil, 500); len(batches) != 0 {
		t.Errorf("len(batches) = %d, want 0", len(batches))
	}
}

func TestCopyBatches(t *testing.T) {
	root := makeDatasetFixture(t, 5, 0)
	outputDir := t.TempDir()

	pairs, err := CollectPairs(root, discardLogger())
	if err != nil {
		t.Fatalf("CollectPairs() error = %v", err)
	}

	batches := SplitIntoBatches(pairs, 2) // 2 + 2 + 1
	if err := CopyBatches(batches, outputDir, discardLogger()); err != nil {
		t.Fatalf("CopyBatches() error = %v", err)
	}

	for i, want := range []int{2, 2, 1} {
		batchImages := filepath.Join(outputDir, fmt.Sprintf("batch_%d", i+1), "images")
		names, err := ListByExtension(batchImages, ImageExtensions)
		if err != nil {
			t.Fatalf("ListByExtension(%s) error = %v", batchImages, err)
		}
		if len(names) != want {
			t.Errorf("batch_%d has %d images, want %d", i+1, len(names), want)
		}
		for _, name := range names {
			label := filepath.Join(outputDir, fmt.Sprintf("batch_%d", i+1), "labels", BaseName(name)+".txt")
			if _, err := os.Stat(label); err != nil {
				t.Errorf("batch_%d image %s missing its label: %v", i+1, name, err)
			}
		}
	}
}
