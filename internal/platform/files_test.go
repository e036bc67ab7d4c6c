package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory to exist, stat: %v", err)
	}

	// Idempotent on an existing directory.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error on existing directory, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Video: Part 1/2", "My Video_ Part 1_2"},
		{"  trimmed.  ", "trimmed"},
		{"???", "___"},
		{" . ", "download"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFindFFmpegPrefersConfiguredPath(t *testing.T) {
	fake := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if got := FindFFmpeg(fake); got != fake {
		t.Errorf("Expected configured path %q, got %q", fake, got)
	}
}
