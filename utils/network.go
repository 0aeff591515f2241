package utils

import (
	"path/filepath"
	"strings"
)

// IsNetworkDrive detects if a file path is on a network-mounted drive.
// Parallel file operations against network mounts tend to be slower than a
// single writer, so commands drop to one worker when the target looks remote.
func IsNetworkDrive(filePath string) bool {
	// Check Windows UNC paths first, before converting to absolute path
	if strings.HasPrefix(filePath, "//") || strings.HasPrefix(filePath, "\\\\") {
		return true
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return false
	}

	// Common network mount points per platform
	networkPrefixes := []string{
		"/mnt/",
		"/media/",
		"/Volumes/",
	}

	for _, prefix := range networkPrefixes {
		if strings.HasPrefix(absPath, prefix) {
			return true
		}
	}

	lowerPath := strings.ToLower(absPath)
	networkIndicators := []string{
		"nfs", "cifs", "smb", "webdav", "ftp", "sftp",
	}

	for _, indicator := range networkIndicators {
		if strings.Contains(lowerPath, indicator) {
			return true
		}
	}

	return false
}
