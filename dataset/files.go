// Package dataset implements the filesystem-level operations of the toolkit:
// random subsampling of frame folders, folder merging, image/label pair
// selection and batching, label statistics and reporting.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageExtensions are the image formats recognised when pairing images with
// labels.
var ImageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".bmp": true, ".tif": true, ".tiff": true,
}

// LabelExtensions are the label formats recognised when pairing images with
// labels.
var LabelExtensions = map[string]bool{
	".txt": true, ".json": true, ".xml": true, ".csv": true,
}

// frameExtensions is the narrower set used by the frame-folder operations
// (subsample, merge, dedupe): extraction only ever writes .jpg.
var frameExtensions = map[string]bool{".jpg": true}

// ListByExtension returns the names (not paths) of regular files in dir whose
// lowercased extension is in exts, in directory order.
func ListByExtension(dir string, exts map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListFrames returns the frame image filenames in dir.
func ListFrames(dir string) ([]string, error) {
	return ListByExtension(dir, frameExtensions)
}

// BaseName strips the extension from a filename. It is the join key between
// an image and its label file.
func BaseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// copyFile copies src to dst, creating or truncating dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
