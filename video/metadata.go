package video

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// GetVideoDuration extracts the video duration using ffprobe and returns it in seconds
func GetVideoDuration(videoFile string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries",
		"format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get duration: %w", err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return seconds, nil
}

// GetFrameRate extracts the video frame rate using ffprobe
func GetFrameRate(videoFile string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate", "-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get frame rate: %w", err)
	}

	return parseFrameRate(strings.TrimSpace(string(output)))
}

// parseFrameRate parses ffprobe's rational frame rate notation ("30000/1001"
// or a plain number)
func parseFrameRate(s string) (float64, error) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
		}
		if d == 0 {
			return 0, fmt.Errorf("invalid frame rate %q: zero denominator", s)
		}
		return n / d, nil
	}

	rate, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid frame rate %q: %w", s, err)
	}
	return rate, nil
}

// GetFrameCount returns the container-reported frame count of the first video
// stream. Some containers don't record it, in which case the count is
// estimated from duration and frame rate. Either way the value may be
// approximate; callers that need exact totals must count decoded frames.
func GetFrameCount(videoFile string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=nb_frames", "-of", "default=noprint_wrappers=1:nokey=1", "--", videoFile)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get frame count: %w", err)
	}

	value := strings.TrimSpace(string(output))
	if count, err := strconv.Atoi(value); err == nil && count > 0 {
		return count, nil
	}

	// nb_frames is "N/A" for streams without a frame count in the header
	duration, err := GetVideoDuration(videoFile)
	if err != nil {
		return 0, err
	}
	rate, err := GetFrameRate(videoFile)
	if err != nil {
		return 0, err
	}

	return int(duration * rate), nil
}

// GetVideoResolution extracts the video resolution using ffprobe
func GetVideoResolution(videoFile string) (string, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height", "-of", "csv=s=x:p=0", "--", videoFile)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get resolution: %w\nffprobe output: %s", err, string(output))
	}

	// Some containers report a resolution line per stream; use the first
	resolution := firstLine(string(output))
	resolution = strings.TrimSuffix(resolution, "x")
	if resolution == "" {
		return "", fmt.Errorf("could not detect video resolution")
	}

	return resolution, nil
}
