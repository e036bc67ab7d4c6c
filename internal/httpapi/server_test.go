package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/progress"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fetcherFunc adapts a function to the download.Fetcher interface.
type fetcherFunc func(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error)

func (f fetcherFunc) Download(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
	return f(ctx, req, sink, ctl)
}

func TestHandleRoot(t *testing.T) {
	server := NewServer(nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestHandleDownload_MissingURL(t *testing.T) {
	server := NewServer(nil, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Missing 'url'") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestHandleDownload_Success(t *testing.T) {
	var captured model.DownloadRequest
	fetcher := fetcherFunc(func(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
		captured = req
		path := filepath.Join(req.OutputDir, "clip.mp4")
		if err := os.WriteFile(path, []byte("video-bytes"), 0644); err != nil {
			return "", err
		}
		return path, nil
	})

	server := NewServer(fetcher, nil)
	w := httptest.NewRecorder()
	body := `{"url":"https://example.com/v","audio_only":false,"resolution":"720p","filename":"clip"}`
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got: %d, body: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "video-bytes" {
		t.Errorf("Unexpected file content: %s", w.Body.String())
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "clip.mp4") {
		t.Errorf("Unexpected disposition: %s", w.Header().Get("Content-Disposition"))
	}

	if captured.Mode != model.ModeVideo {
		t.Errorf("Expected video mode, got: %s", captured.Mode)
	}
	if captured.Resolution != "720p" || captured.Filename != "clip" {
		t.Errorf("Request fields not forwarded: %+v", captured)
	}
	if captured.OutputDir == "" {
		t.Error("Expected a scratch output directory")
	}
	if _, err := os.Stat(captured.OutputDir); !os.IsNotExist(err) {
		t.Error("Scratch directory should be removed after the response")
	}
}

func TestHandleDownload_AudioMode(t *testing.T) {
	var captured model.DownloadRequest
	fetcher := fetcherFunc(func(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
		captured = req
		path := filepath.Join(req.OutputDir, "clip.mp3")
		if err := os.WriteFile(path, []byte("audio-bytes"), 0644); err != nil {
			return "", err
		}
		return path, nil
	})

	server := NewServer(fetcher, nil)
	w := httptest.NewRecorder()
	body := `{"url":"https://example.com/v","audio_only":true}`
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got: %d", w.Code)
	}
	if captured.Mode != model.ModeAudioOnly {
		t.Errorf("Expected audio mode, got: %s", captured.Mode)
	}
}

func TestHandleDownload_DownloadErrorIs400(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
		return "", &fetch.DownloadError{Msg: "video unavailable"}
	})

	server := NewServer(fetcher, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(`{"url":"https://example.com/v"}`))
	req.Header.Set("Content-Type", "application/json")

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "video unavailable") {
		t.Errorf("Expected failure message in body: %s", w.Body.String())
	}
}

func TestHandleDownload_MissingFileIs500(t *testing.T) {
	fetcher := fetcherFunc(func(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
		return filepath.Join(req.OutputDir, "never-written.mp4"), nil
	})

	server := NewServer(fetcher, nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/download", strings.NewReader(`{"url":"https://example.com/v"}`))
	req.Header.Set("Content-Type", "application/json")

	server.Router().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Download destination not found") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}
