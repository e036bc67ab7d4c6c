package strategy

import (
	"os"
	"path/filepath"
	"strings"
)

// AudioExtension is the normalized container every audio extraction ends in,
// regardless of what the caller typed.
const AudioExtension = "mp3"

// outputTemplate maps the caller's optional filename onto a yt-dlp output
// template plus the extension the finished file must be renamed to.
// finalExt is only set in audio mode; in video mode the merged container is
// kept as yt-dlp produced it.
//
// Rules: a filename with an extension is used verbatim, except in audio mode
// where the extension is forced to .mp3; a filename without an extension gets
// the downloader's natural extension appended; no filename falls back to the
// resolved remote title.
func outputTemplate(filename string, audioOnly bool) (template, finalExt string) {
	if audioOnly {
		finalExt = AudioExtension
	}
	if filename == "" {
		return "%(title)s.%(ext)s", finalExt
	}
	ext := filepath.Ext(filename)
	if ext == "" {
		return filename + ".%(ext)s", finalExt
	}
	if audioOnly {
		return strings.TrimSuffix(filename, ext) + "." + AudioExtension, AudioExtension
	}
	return filename, ""
}

// fixExtension renames path so it carries ext, keeping the original path when
// the rename fails or the file is gone.
func fixExtension(path, ext string) string {
	want := "." + ext
	current := filepath.Ext(path)
	if current == want {
		return path
	}
	if _, err := os.Stat(path); err != nil {
		return path
	}
	target := strings.TrimSuffix(path, current) + want
	if _, err := os.Stat(target); err == nil {
		if err := os.Remove(target); err != nil {
			return path
		}
	}
	if err := os.Rename(path, target); err != nil {
		return path
	}
	return target
}
