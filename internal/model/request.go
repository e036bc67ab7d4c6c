package model

import (
	"errors"
	"strings"
)

// Mode selects what gets materialized on disk for a request.
type Mode string

const (
	// ModeVideo downloads the combined audio+video rendition.
	ModeVideo Mode = "video"

	// ModeAudioOnly downloads only the audio stream.
	ModeAudioOnly Mode = "audio"
)

// ErrMissingURL is returned when a request carries no source URL.
var ErrMissingURL = errors.New("missing source URL")

// DownloadRequest describes a single download: exactly one source URL and
// exactly one output file. The zero value is not valid; use Validate before
// handing a request to the orchestrator.
type DownloadRequest struct {
	URL        string
	OutputDir  string
	Filename   string // optional custom name, extension optional
	Mode       Mode
	Resolution string // e.g. "1080p"; meaningful only when Mode is ModeVideo
	Cookies    string // raw cookie header value or a multi-line cookie-jar blob
}

// AudioOnly reports whether the request asks for an audio extraction.
func (r DownloadRequest) AudioOnly() bool {
	return r.Mode == ModeAudioOnly
}

// WantResolution returns the requested resolution constraint. The constraint
// is ignored for audio-only requests.
func (r DownloadRequest) WantResolution() string {
	if r.AudioOnly() {
		return ""
	}
	return strings.TrimSpace(r.Resolution)
}

// Authenticated reports whether the request carries cookie material.
func (r DownloadRequest) Authenticated() bool {
	return strings.TrimSpace(r.Cookies) != ""
}

// Validate checks the request invariants that do not require network access.
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrMissingURL
	}
	return nil
}
