package strategy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputTemplate_NoFilename(t *testing.T) {
	template, ext := outputTemplate("", false)
	if template != "%(title)s.%(ext)s" {
		t.Errorf("Expected title template, got: %s", template)
	}
	if ext != "" {
		t.Errorf("Expected no forced extension, got: %s", ext)
	}
}

func TestOutputTemplate_NoFilenameAudio(t *testing.T) {
	template, ext := outputTemplate("", true)
	if template != "%(title)s.%(ext)s" {
		t.Errorf("Expected title template, got: %s", template)
	}
	if ext != AudioExtension {
		t.Errorf("Expected forced mp3 extension, got: %s", ext)
	}
}

func TestOutputTemplate_FilenameWithoutExtension(t *testing.T) {
	template, ext := outputTemplate("myclip", false)
	if template != "myclip.%(ext)s" {
		t.Errorf("Expected natural extension template, got: %s", template)
	}
	if ext != "" {
		t.Errorf("Expected no forced extension, got: %s", ext)
	}
}

func TestOutputTemplate_FilenameWithExtension(t *testing.T) {
	template, ext := outputTemplate("myclip.mkv", false)
	if template != "myclip.mkv" {
		t.Errorf("Expected verbatim filename, got: %s", template)
	}
	if ext != "" {
		t.Errorf("Expected no forced extension in video mode, got: %s", ext)
	}
}

func TestOutputTemplate_VideoModeNeverRenames(t *testing.T) {
	tempDir := t.TempDir()
	merged := filepath.Join(tempDir, "clip.mp4")
	if err := os.WriteFile(merged, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, ext := outputTemplate("clip.mkv", false)
	if ext != "" {
		t.Fatalf("Expected no forced extension in video mode, got: %s", ext)
	}
	if _, err := os.Stat(merged); err != nil {
		t.Errorf("Merged file missing: %v", err)
	}
}

func TestOutputTemplate_AudioOverridesExtension(t *testing.T) {
	template, ext := outputTemplate("myclip.mkv", true)
	if template != "myclip.mp3" {
		t.Errorf("Expected mp3 filename in audio mode, got: %s", template)
	}
	if ext != AudioExtension {
		t.Errorf("Expected mp3 as final extension, got: %s", ext)
	}
}

func TestFixExtension_Renames(t *testing.T) {
	tempDir := t.TempDir()
	source := filepath.Join(tempDir, "clip.webm")
	if err := os.WriteFile(source, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	got := fixExtension(source, "mp3")
	want := filepath.Join(tempDir, "clip.mp3")
	if got != want {
		t.Errorf("Expected %s, got: %s", want, got)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("Renamed file does not exist: %v", err)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Error("Original file still exists after rename")
	}
}

func TestFixExtension_AlreadyCorrect(t *testing.T) {
	tempDir := t.TempDir()
	source := filepath.Join(tempDir, "clip.mp3")
	if err := os.WriteFile(source, []byte("data"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if got := fixExtension(source, "mp3"); got != source {
		t.Errorf("Expected path unchanged, got: %s", got)
	}
}

func TestFixExtension_MissingFileKeepsPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.webm")
	if got := fixExtension(missing, "mp3"); got != missing {
		t.Errorf("Expected original path for missing file, got: %s", got)
	}
}

func TestFixExtension_ReplacesExistingTarget(t *testing.T) {
	tempDir := t.TempDir()
	source := filepath.Join(tempDir, "clip.webm")
	target := filepath.Join(tempDir, "clip.mp3")
	if err := os.WriteFile(source, []byte("new"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to write target file: %v", err)
	}

	got := fixExtension(source, "mp3")
	if got != target {
		t.Errorf("Expected %s, got: %s", target, got)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read renamed file: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("Expected target replaced with new content, got: %s", data)
	}
}
