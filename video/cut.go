package video

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// TrimTail re-encodes the last keepMinutes of a video into outputPath. The
// stream is re-encoded rather than stream-copied so the cut lands exactly at
// the computed offset instead of snapping to the previous keyframe. Audio is
// copied through untouched.
func TrimTail(inputPath, outputPath string, keepMinutes float64) error {
	if keepMinutes <= 0 {
		return fmt.Errorf("minutes to keep must be positive, got %g", keepMinutes)
	}

	duration, err := GetVideoDuration(inputPath)
	if err != nil {
		return &OpenError{Path: inputPath, Err: err}
	}

	start := TailStart(duration, keepMinutes)
	kept := duration - start

	cmd := exec.Command("ffmpeg",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", start),
		"-i", inputPath,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-c:a", "copy",
		"-progress", "pipe:1",
		"-nostats",
		"-y",
		outputPath,
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create progress pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	bar := progressbar.NewOptions(int(kept),
		progressbar.OptionSetDescription(fmt.Sprintf("Cutting last %.1f minutes", keepMinutes)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("s"),
	)
	trackEncodeProgress(stdout, bar)

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg trim failed: %w", err)
	}

	_ = bar.Finish()
	return nil
}

// TailStart returns the stream offset in seconds at which the kept tail
// begins, clamped at the start of the stream.
func TailStart(durationSeconds, keepMinutes float64) float64 {
	start := durationSeconds - keepMinutes*60
	if start < 0 {
		return 0
	}
	return start
}

// trackEncodeProgress consumes ffmpeg's -progress key=value stream and moves
// the bar to the encoded position in seconds.
func trackEncodeProgress(r io.Reader, bar *progressbar.ProgressBar) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !found || key != "out_time_us" {
			continue
		}
		us, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		_ = bar.Set(int(us / 1_000_000))
	}
}
