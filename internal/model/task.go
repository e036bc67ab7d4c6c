package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask represents a single background download tracked by the task
// service. One task owns one request, one control object, and at most one
// output file.
type DownloadTask struct {
	ID      string
	Request DownloadRequest
	Status  TaskStatus

	Percent       float64 // 0 to 100, valid when Indeterminate is false
	Indeterminate bool    // true during merge/extract phases
	Message       string  // last progress message, may be empty

	LastError  string // last error message if any
	OutputPath string // path to the downloaded file
	StartedAt  time.Time
	FinishedAt time.Time
}

// DisplayName returns the best human label available for the task: the output
// file name once known, the custom filename otherwise, falling back to the URL.
func (dt *DownloadTask) DisplayName() string {
	if dt.OutputPath != "" {
		name := filepath.Base(dt.OutputPath)
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}
	if dt.Request.Filename != "" {
		return dt.Request.Filename
	}
	return dt.Request.URL
}
