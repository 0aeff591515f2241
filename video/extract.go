package video

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
)

// ExtractFrames walks the input folder (non-recursive), decodes every video
// file in it and saves every intervalth frame as
// <base>_frame_<counter>.jpg under <outputDir>/<base>/. The counter counts
// saved frames, not stream positions. Videos that fail to open or decode are
// reported and skipped; the batch continues.
//
// Videos sharing a base name but differing in extension land in the same
// output folder and overwrite each other's frames. Carried over from the
// original tooling; see DESIGN.md.
//
// The returned statistics cover the whole run. Total frame counts are taken
// from the decode loop, not the container header, so they are exact.
func ExtractFrames(inputDir, outputDir string, interval int) (*Stats, error) {
	if interval < 1 {
		return nil, fmt.Errorf("interval must be at least 1, got %d", interval)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("cannot read input folder: %w", err)
	}

	var videos []string
	for _, entry := range entries {
		if !entry.IsDir() && IsVideoFile(entry.Name()) {
			videos = append(videos, entry.Name())
		}
	}

	stats := NewStats(len(videos))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output folder: %w", err)
	}

	for _, name := range videos {
		videoPath := filepath.Join(inputDir, name)
		frameDir := filepath.Join(outputDir, BaseName(name))

		frames, extracted, err := extractVideo(videoPath, frameDir, interval)
		if err != nil {
			fmt.Printf("⚠️  Skipping %s: %v\n", name, err)
			continue
		}

		// Best effort, probe failures leave the column empty
		resolution, _ := GetVideoResolution(videoPath)

		stats.Record(name, resolution, frames, extracted)
	}

	return stats, nil
}

// extractVideo drives one FrameReader and writes the selected frames.
// Returns the number of frames decoded and the number saved.
func extractVideo(videoPath, frameDir string, interval int) (frames, extracted int, err error) {
	if err := ValidateVideoIntegrity(videoPath); err != nil {
		return 0, 0, err
	}

	reader, err := OpenFrameReader(videoPath)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = reader.Close() }()

	if err := os.MkdirAll(frameDir, 0755); err != nil {
		return 0, 0, fmt.Errorf("cannot create frame folder: %w", err)
	}

	base := BaseName(videoPath)
	bar := progressbar.NewOptions(reader.FrameCount(),
		progressbar.OptionSetDescription(fmt.Sprintf("Processing %s", filepath.Base(videoPath))),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("frame"),
		progressbar.OptionClearOnFinish(),
	)

	for {
		frame, err := reader.ReadNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return frames, extracted, err
		}

		if frames%interval == 0 {
			name := FrameFilename(base, extracted)
			if err := os.WriteFile(filepath.Join(frameDir, name), frame, 0644); err != nil {
				return frames, extracted, fmt.Errorf("cannot save frame: %w", err)
			}
			extracted++
		}

		frames++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return frames, extracted, nil
}

// FrameFilename names a saved frame after its video and save counter, e.g.
// "cam3_frame_00012.jpg".
func FrameFilename(base string, saved int) string {
	return fmt.Sprintf("%s_frame_%05d.jpg", base, saved)
}
