package download

import (
	"context"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/progress"
)

// Fetcher resolves one request into a file on disk. *fetch.Orchestrator is
// the production implementation.
type Fetcher interface {
	Download(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error)
}

// Downloader defines the interface for the download task service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	AddTask(req model.DownloadRequest) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	StopTask(id string) error
	PauseTask(id string) error
	ResumeTask(id string) error
	RemoveTask(id string) error
	SetMaxParallelDownloads(max int)
	SetDownloadDirectory(dir string)
}
