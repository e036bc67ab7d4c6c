package strategy

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytgrab/ytgrab/internal/control"
)

type sinkRecorder struct {
	percents []*float64
	messages []string
}

func (r *sinkRecorder) sink(percent *float64, message string) {
	r.percents = append(r.percents, percent)
	r.messages = append(r.messages, message)
}

func TestRelayProgress_Downloading(t *testing.T) {
	rec := &sinkRecorder{}
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		TotalBytes:      200,
		DownloadedBytes: 50,
	}

	if path := relayProgress(update, rec.sink, control.New()); path != "" {
		t.Errorf("Expected no finished path, got: %s", path)
	}
	if len(rec.percents) != 1 {
		t.Fatalf("Expected one event, got: %d", len(rec.percents))
	}
	if rec.percents[0] == nil || *rec.percents[0] != 25 {
		t.Errorf("Expected 25 percent, got: %v", rec.percents[0])
	}
}

func TestRelayProgress_UnknownTotal(t *testing.T) {
	rec := &sinkRecorder{}
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 50,
	}

	relayProgress(update, rec.sink, control.New())
	if len(rec.percents) != 1 {
		t.Fatalf("Expected one event, got: %d", len(rec.percents))
	}
	if rec.percents[0] != nil {
		t.Errorf("Expected indeterminate event, got: %v", *rec.percents[0])
	}
}

func TestRelayProgress_PostProcessing(t *testing.T) {
	rec := &sinkRecorder{}
	update := ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusPostProcessing}

	relayProgress(update, rec.sink, control.New())
	if len(rec.messages) != 1 || rec.messages[0] != "Processing..." {
		t.Errorf("Expected processing message, got: %v", rec.messages)
	}
}

func TestRelayProgress_FinishedReportsFilename(t *testing.T) {
	rec := &sinkRecorder{}
	filename := "/tmp/clip.mp4"
	update := ytdlp.ProgressUpdate{
		Status: ytdlp.ProgressStatusFinished,
		Info:   &ytdlp.ExtractedInfo{Filename: &filename},
	}

	if path := relayProgress(update, rec.sink, control.New()); path != filename {
		t.Errorf("Expected %s, got: %s", filename, path)
	}
	if len(rec.percents) != 0 {
		t.Errorf("Expected no sink events for finished update, got: %d", len(rec.percents))
	}
}

func TestRelayProgress_SilentAfterCancel(t *testing.T) {
	rec := &sinkRecorder{}
	ctl := control.New()
	ctl.Cancel()
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		TotalBytes:      200,
		DownloadedBytes: 50,
	}

	if path := relayProgress(update, rec.sink, ctl); path != "" {
		t.Errorf("Expected no finished path after cancel, got: %s", path)
	}
	if len(rec.percents) != 0 {
		t.Errorf("Expected no events after cancel, got: %d", len(rec.percents))
	}
}
