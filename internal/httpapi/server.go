package httpapi

// Package httpapi exposes the download pipeline over HTTP: a health endpoint
// and a blocking download endpoint that streams the finished file back as an
// attachment.

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/model"
)

// downloadRequest is the /download request body.
type downloadRequest struct {
	URL        string `json:"url"`
	AudioOnly  bool   `json:"audio_only"`
	Resolution string `json:"resolution"`
	Filename   string `json:"filename"`
	Cookies    string `json:"cookies"`
}

// Server wires the fetcher into a gin router.
type Server struct {
	fetcher download.Fetcher
	log     *zap.Logger
}

// NewServer creates the HTTP API server. log may be nil.
func NewServer(fetcher download.Fetcher, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{fetcher: fetcher, log: log}
}

// Router builds the gin engine with logging and recovery middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(s.log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.log, true))

	r.GET("/", s.handleRoot)
	r.POST("/download", s.handleDownload)
	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "ytgrab backend running",
	})
}

// handleDownload runs one synchronous download into a scratch directory and
// returns the file as an attachment. The scratch directory is removed after
// the response is written.
func (s *Server) handleDownload(c *gin.Context) {
	var body downloadRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'url' in request body"})
		return
	}

	tempDir, err := os.MkdirTemp("", "yt-download-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download video"})
		return
	}

	mode := model.ModeVideo
	if body.AudioOnly {
		mode = model.ModeAudioOnly
	}
	req := model.DownloadRequest{
		URL:        body.URL,
		OutputDir:  tempDir,
		Filename:   body.Filename,
		Mode:       mode,
		Resolution: body.Resolution,
		Cookies:    body.Cookies,
	}

	path, err := s.fetcher.Download(context.Background(), req, nil, nil)
	if err != nil {
		os.RemoveAll(tempDir)
		var dlErr *fetch.DownloadError
		if errors.As(err, &dlErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": dlErr.Msg})
			return
		}
		s.log.Error("download failed", zap.String("url", body.URL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download video"})
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		os.RemoveAll(tempDir)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Download destination not found"})
		return
	}

	defer os.RemoveAll(tempDir)
	c.FileAttachment(path, info.Name())
}
