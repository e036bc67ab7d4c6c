package model

import (
	"errors"
	"testing"
)

func TestDownloadRequestValidate(t *testing.T) {
	req := DownloadRequest{URL: "https://youtube.com/watch?v=abc", Mode: ModeVideo}
	if err := req.Validate(); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	empty := DownloadRequest{URL: "   ", Mode: ModeVideo}
	if err := empty.Validate(); !errors.Is(err, ErrMissingURL) {
		t.Errorf("Expected ErrMissingURL, got %v", err)
	}
}

func TestWantResolutionIgnoredForAudio(t *testing.T) {
	req := DownloadRequest{
		URL:        "https://youtube.com/watch?v=abc",
		Mode:       ModeAudioOnly,
		Resolution: "1080p",
	}
	if got := req.WantResolution(); got != "" {
		t.Errorf("Expected empty resolution for audio mode, got '%s'", got)
	}

	req.Mode = ModeVideo
	if got := req.WantResolution(); got != "1080p" {
		t.Errorf("Expected '1080p', got '%s'", got)
	}
}

func TestAuthenticated(t *testing.T) {
	req := DownloadRequest{URL: "u", Cookies: "  "}
	if req.Authenticated() {
		t.Error("Expected blank cookie material to count as unauthenticated")
	}

	req.Cookies = "SID=abc"
	if !req.Authenticated() {
		t.Error("Expected request with cookie material to be authenticated")
	}
}
