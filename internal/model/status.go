package model

// TaskStatus represents the status of a background download task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the task is in the process of starting
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the download is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusPaused means the download is paused by the user
	TaskStatusPaused TaskStatus = "Paused"

	// TaskStatusProcessing means the strategy is in a post-download phase
	// (merging or audio extraction) with indeterminate progress
	TaskStatusProcessing TaskStatus = "Processing"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusCancelled means the task was cancelled by the user
	TaskStatusCancelled TaskStatus = "Cancelled"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	switch ts {
	case TaskStatusStarting, TaskStatusDownloading, TaskStatusPaused,
		TaskStatusProcessing, TaskStatusStopping:
		return true
	}
	return false
}

// IsFinished returns true if the task is in a terminal state (completed,
// cancelled, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusCancelled || ts == TaskStatusError
}
