package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/progress"
)

// Service handles download task operations
type Service struct {
	fetcher Fetcher
	log     *zap.SugaredLogger

	tasksMutex  sync.RWMutex
	tasks       map[string]*model.DownloadTask
	controls    map[string]*control.Control
	maxParallel int
	activeCount int
	downloadDir string
	onUpdate    func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service. log may be nil.
func NewService(fetcher Fetcher, downloadDir string, maxParallel int, log *zap.SugaredLogger) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		fetcher:     fetcher,
		log:         log,
		tasks:       make(map[string]*model.DownloadTask),
		controls:    make(map[string]*control.Control),
		maxParallel: maxParallel,
		downloadDir: downloadDir,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Service) SetMaxParallelDownloads(max int) {
	if max < 1 {
		max = 1
	}
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.maxParallel = max
}

// SetDownloadDirectory sets the directory used for tasks that do not carry
// their own output directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.downloadDir = dir
}

// AddTask adds a new download task
func (s *Service) AddTask(req model.DownloadRequest) (*model.DownloadTask, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate URLs
	for _, task := range s.tasks {
		if task.Request.URL == req.URL && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already exists for URL: %s", req.URL)
		}
	}

	if req.OutputDir == "" {
		req.OutputDir = s.downloadDir
	}

	task := &model.DownloadTask{
		ID:        uuid.NewString(),
		Request:   req,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}

	s.tasks[task.ID] = task
	s.controls[task.ID] = control.New()

	if s.activeCount < s.maxParallel {
		s.activeCount++
		go s.runTask(task)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// StopTask cancels a task. A queued task goes straight to Cancelled; a
// running one moves to Stopping and its goroutine observes the cancel at the
// next checkpoint.
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	ctl := s.controls[id]
	switch {
	case task.Status == model.TaskStatusPending:
		task.Status = model.TaskStatusCancelled
		task.FinishedAt = time.Now()
	case task.Status.IsActive():
		task.Status = model.TaskStatusStopping
	default:
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", task.Status)
	}
	s.tasksMutex.Unlock()

	ctl.Cancel()
	s.notifyUpdate(task)
	return nil
}

// PauseTask pauses a downloading task
func (s *Service) PauseTask(id string) error {
	s.tasksMutex.Lock()
	task, ctl, err := s.activeTaskLocked(id)
	if err != nil {
		s.tasksMutex.Unlock()
		return err
	}
	task.Status = model.TaskStatusPaused
	s.tasksMutex.Unlock()

	ctl.Pause()
	s.notifyUpdate(task)
	return nil
}

// ResumeTask resumes a paused task
func (s *Service) ResumeTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status != model.TaskStatusPaused {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not paused: %s", task.Status)
	}
	ctl := s.controls[id]
	task.Status = model.TaskStatusDownloading
	s.tasksMutex.Unlock()

	ctl.Resume()
	s.notifyUpdate(task)
	return nil
}

// RemoveTask removes a finished task from the service
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status.IsActive() {
		return fmt.Errorf("task is still active: %s", task.Status)
	}
	delete(s.tasks, id)
	delete(s.controls, id)
	return nil
}

// activeTaskLocked looks up an active task and its control. Caller holds the
// write lock.
func (s *Service) activeTaskLocked(id string) (*model.DownloadTask, *control.Control, error) {
	task, exists := s.tasks[id]
	if !exists {
		return nil, nil, fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsActive() {
		return nil, nil, fmt.Errorf("task is not active: %s", task.Status)
	}
	return task, s.controls[id], nil
}

// runTask drives one task through the fetcher
func (s *Service) runTask(task *model.DownloadTask) {
	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()
		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	ctl := s.controls[task.ID]
	task.Status = model.TaskStatusStarting
	req := task.Request
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	path, err := s.fetcher.Download(context.Background(), req, s.sinkFor(task), ctl)

	s.tasksMutex.Lock()
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
		task.Percent = 100
		task.Indeterminate = false
		task.OutputPath = path
	case errors.Is(err, control.ErrCancelled):
		task.Status = model.TaskStatusCancelled
	default:
		task.Status = model.TaskStatusError
		task.LastError = errorMessage(err)
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if err != nil && !errors.Is(err, control.ErrCancelled) {
		s.log.Errorw("download failed", "task", task.ID, "url", req.URL, "error", err)
	}
	s.notifyUpdate(task)
}

// sinkFor builds the progress sink that mirrors strategy progress into the
// task. A nil percent marks an indeterminate phase (merge or extraction).
func (s *Service) sinkFor(task *model.DownloadTask) progress.Sink {
	return func(percent *float64, message string) {
		s.tasksMutex.Lock()
		if percent == nil {
			task.Indeterminate = true
			task.Message = message
			if task.Status == model.TaskStatusDownloading {
				task.Status = model.TaskStatusProcessing
			}
		} else {
			task.Indeterminate = false
			task.Percent = *percent
			task.Message = message
			if task.Status == model.TaskStatusProcessing {
				task.Status = model.TaskStatusDownloading
			}
		}
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	}
}

// startNextPendingTask starts the next pending task if we have capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return
	}
	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending {
			s.activeCount++
			go s.runTask(task)
			return
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()
	if callback != nil {
		callback(task)
	}
}

// errorMessage keeps the short human-readable message for terminal errors.
func errorMessage(err error) string {
	var dlErr *fetch.DownloadError
	if errors.As(err, &dlErr) {
		return dlErr.Msg
	}
	return err.Error()
}
