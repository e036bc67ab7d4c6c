package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// FFmpegCommand is the executable looked up on PATH when no explicit
// location is configured.
const FFmpegCommand = "ffmpeg"

// Characters that are unsafe in filenames on at least one supported OS.
var unsafeFilenameChars = []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the user's Downloads directory, falling back to
// the working directory when the home directory cannot be determined.
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFilename replaces characters that are invalid in filenames and
// trims surrounding whitespace and dots. Returns "download" when nothing
// usable remains.
func SanitizeFilename(name string) string {
	for _, c := range unsafeFilenameChars {
		name = strings.ReplaceAll(name, c, "_")
	}
	name = strings.Trim(name, " .")
	if name == "" {
		return "download"
	}
	return name
}

// FindFFmpeg returns the ffmpeg location to hand to the fallback strategy:
// the configured path when non-empty, otherwise the first match on PATH.
// Returns "" when ffmpeg is not available; yt-dlp then uses its own lookup.
func FindFFmpeg(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}
	if path, err := exec.LookPath(FFmpegCommand); err == nil {
		return path
	}
	return ""
}
