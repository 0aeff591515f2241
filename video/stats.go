package video

import (
	"fmt"
	"strings"
)

// VideoStats is the per-video line of the run report. Resolution is
// probe-reported and may be empty when ffprobe could not determine it.
type VideoStats struct {
	Name       string
	Resolution string
	Frames     int
	Extracted  int
}

// Stats accumulates run-wide extraction statistics. One value per pipeline
// invocation, written sequentially by the extraction loop and read once at
// the end; not safe for concurrent writers.
type Stats struct {
	TotalVideos     int
	ProcessedVideos int
	TotalFrames     int
	ExtractedFrames int
	Videos          []VideoStats
}

// NewStats creates an accumulator for a run that discovered totalVideos
// videos.
func NewStats(totalVideos int) *Stats {
	return &Stats{TotalVideos: totalVideos}
}

// Record adds the results of one completed video. Called exactly once per
// successfully processed video, in processing order.
func (s *Stats) Record(name, resolution string, frames, extracted int) {
	s.Videos = append(s.Videos, VideoStats{Name: name, Resolution: resolution, Frames: frames, Extracted: extracted})
	s.TotalFrames += frames
	s.ExtractedFrames += extracted
	s.ProcessedVideos++
}

// Summary renders the run report in the same shape the per-video prints use.
func (s *Stats) Summary() string {
	var b strings.Builder

	b.WriteString("=== Processing Summary ===\n")
	fmt.Fprintf(&b, "Total videos found: %d\n", s.TotalVideos)
	fmt.Fprintf(&b, "Videos processed: %d\n", s.ProcessedVideos)
	fmt.Fprintf(&b, "Total frames across all videos: %d\n", s.TotalFrames)
	fmt.Fprintf(&b, "Total frames extracted: %d\n", s.ExtractedFrames)

	if len(s.Videos) > 0 {
		b.WriteString("\nPer-video statistics:\n")
		for _, v := range s.Videos {
			fmt.Fprintf(&b, "\n%s:\n", v.Name)
			if v.Resolution != "" {
				fmt.Fprintf(&b, "  Resolution: %s\n", v.Resolution)
			}
			fmt.Fprintf(&b, "  Total frames: %d\n", v.Frames)
			fmt.Fprintf(&b, "  Extracted frames: %d\n", v.Extracted)
		}
	}

	b.WriteString("\n=======================")
	return b.String()
}
