package video

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsVideoFile checks if the given file extension is one of the supported
// video container extensions
func IsVideoFile(path string) bool {
	var supportedExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".dav"}

	ext := filepath.Ext(path)
	ext = strings.ToLower(ext) // handle cases where extension is upper case

	for _, v := range supportedExtensions {
		if v == ext {
			return true
		}
	}
	return false
}

// BaseName returns the filename without directory or extension. It is the
// join key between a video and its frame folder.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ValidateVideoIntegrity checks if a video file is corrupted or invalid
// Returns an error if the file is corrupted or cannot be read
func ValidateVideoIntegrity(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}

	// Minimal probe to validate the container structure without decoding
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", "--", filePath)
	output, err := cmd.CombinedOutput()

	if err != nil {
		outputStr := string(output)
		if strings.Contains(outputStr, "moov atom not found") {
			return fmt.Errorf("video file is corrupted (missing metadata): %s", firstLine(outputStr))
		}
		if strings.Contains(outputStr, "Invalid data found") ||
			strings.Contains(outputStr, "corrupt") ||
			strings.Contains(outputStr, "truncated") {
			return fmt.Errorf("video file is corrupted or invalid: %s", firstLine(outputStr))
		}
		return fmt.Errorf("ffprobe error: %w\nOutput: %s", err, firstLine(outputStr))
	}

	return nil
}

// firstLine extracts just the first line from a multi-line string
func firstLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
		return strings.TrimSpace(lines[0])
	}
	return "no additional information available"
}
