package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytgrab/ytgrab/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyMaxParallel = "max_parallel_downloads"
	KeyAudioOnly   = "audio_only"
	KeyResolution  = "preferred_resolution"
	KeyFFmpegPath  = "ffmpeg_path"
)

// Default values
const (
	DefaultMaxParallel = 2
	DefaultResolution  = "" // no ceiling, best available
)

// Settings manages application configuration through Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(max int) {
	s.app.Preferences().SetInt(KeyMaxParallel, max)
}

// GetAudioOnly returns whether downloads default to audio extraction
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().Bool(KeyAudioOnly)
}

// SetAudioOnly sets the audio extraction default
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetPreferredResolution returns the preferred resolution ceiling, empty for
// best available
func (s *Settings) GetPreferredResolution() string {
	return s.app.Preferences().StringWithFallback(KeyResolution, DefaultResolution)
}

// SetPreferredResolution sets the preferred resolution ceiling
func (s *Settings) SetPreferredResolution(resolution string) {
	s.app.Preferences().SetString(KeyResolution, resolution)
}

// GetFFmpegPath returns an explicit ffmpeg location, empty to use PATH
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().String(KeyFFmpegPath)
}

// SetFFmpegPath sets an explicit ffmpeg location
func (s *Settings) SetFFmpegPath(path string) {
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}
