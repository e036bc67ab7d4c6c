package strategy

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/progress"
)

const ytdlpName = "yt-dlp"

// cancelPollInterval is how often the watcher checks for a cancel request
// while the external process runs.
const cancelPollInterval = 50 * time.Millisecond

// YtDLP is the fallback strategy: it shells out to yt-dlp, which covers
// authenticated requests, audio extraction, and adaptive streams that need
// an ffmpeg merge.
type YtDLP struct {
	// FFmpegPath optionally points at an ffmpeg binary; when empty the
	// system PATH is searched.
	FFmpegPath string

	log *zap.SugaredLogger
}

// NewYtDLP returns the fallback strategy. log may be nil.
func NewYtDLP(log *zap.SugaredLogger) *YtDLP {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &YtDLP{log: log}
}

func (s *YtDLP) Name() string { return ytdlpName }

// relayProgress converts one yt-dlp progress update into sink events. It
// blocks while paused and goes silent once a cancel is observed, since the
// watcher is about to kill the run. The returned path is the finished
// filename when the update carries one, "" otherwise.
func relayProgress(update ytdlp.ProgressUpdate, sink progress.Sink, ctl *control.Control) string {
	if err := ctl.WaitIfPaused(); err != nil {
		return ""
	}
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		if update.TotalBytes > 0 {
			pct := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			// The single final (100, "") is emitted after the run.
			if pct < 100 {
				sink(progress.Value(pct), "")
			}
		} else {
			sink(nil, "")
		}
	case ytdlp.ProgressStatusPostProcessing:
		sink(nil, "Processing...")
	case ytdlp.ProgressStatusFinished:
		if update.Info != nil && update.Info.Filename != nil {
			return *update.Info.Filename
		}
	}
	return ""
}

// Execute runs yt-dlp against the request, translating its progress stream
// into sink events and its flag surface from the request fields. Cancel is
// honored by killing the process; pause is honored at progress events.
func (s *YtDLP) Execute(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
	if sink == nil {
		sink = progress.Discard
	}
	if ctl == nil {
		ctl = control.New()
	}
	if err := ctl.ErrIfCancelled(); err != nil {
		return "", err
	}

	// Scratch space for partial fragments and the cookie jar, removed on
	// every exit path.
	tempDir, err := os.MkdirTemp("", "ytgrab-")
	if err != nil {
		return "", fetch.Fail(ytdlpName, err)
	}
	defer os.RemoveAll(tempDir)

	template, finalExt := outputTemplate(req.Filename, req.AudioOnly())

	cmd := ytdlp.New().
		ForceOverwrites().
		NoPlaylist().
		Paths("temp:" + tempDir).
		Output(filepath.Join(req.OutputDir, template))

	if req.AudioOnly() {
		cmd = cmd.Format(audioFormatSelector).
			ExtractAudio().
			AudioFormat(AudioExtension).
			AudioQuality(audioQuality)
	} else {
		cmd = cmd.Format(videoFormatSelector(req.WantResolution())).
			MergeOutputFormat("mp4")
	}

	if ffmpeg := platform.FindFFmpeg(s.FFmpegPath); ffmpeg != "" {
		cmd = cmd.FFmpegLocation(ffmpeg)
	}

	if req.Authenticated() {
		jar, header, err := materializeCookies(tempDir, req.Cookies)
		if err != nil {
			return "", fetch.Fail(ytdlpName, err)
		}
		if jar != "" {
			cmd = cmd.Cookies(jar)
		} else {
			cmd = cmd.AddHeaders("Cookie:" + header)
		}
	}

	var (
		mu       sync.Mutex
		lastPath string
	)
	cmd = cmd.ProgressFunc(200*time.Millisecond, func(update ytdlp.ProgressUpdate) {
		if path := relayProgress(update, sink, ctl); path != "" {
			mu.Lock()
			lastPath = path
			mu.Unlock()
		}
	})

	// The watcher bridges the cooperative cancel flag to the process: a
	// cancel request kills the run through context cancellation.
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		ticker := time.NewTicker(cancelPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if ctl.Cancelled() {
					stop()
					return
				}
			}
		}
	}()

	s.log.Debugw("invoking yt-dlp", "url", req.URL, "audio", req.AudioOnly(), "resolution", req.WantResolution())
	result, runErr := cmd.Run(runCtx, req.URL)
	stop()
	<-watcherDone

	if ctl.Cancelled() {
		return "", control.ErrCancelled
	}
	if runErr != nil {
		return "", fetch.Fail(ytdlpName, runErr)
	}

	mu.Lock()
	path := lastPath
	mu.Unlock()

	if path == "" && result != nil {
		if info, err := result.GetExtractedInfo(); err == nil {
			for _, entry := range info {
				if entry.Filename != nil && *entry.Filename != "" {
					path = *entry.Filename
				}
			}
		}
	}
	if path == "" {
		return "", fetch.Failf(ytdlpName, "no output file reported for %s", req.URL)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(req.OutputDir, filepath.Base(path))
	}

	// Audio extraction may swap the container after the final progress
	// event, so reconcile the extension with what is on disk.
	if finalExt != "" {
		path = fixExtension(path, finalExt)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sink(progress.Value(100), "")
	return abs, nil
}
