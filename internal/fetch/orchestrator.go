package fetch

// Package fetch contains the download orchestration core: it picks which
// strategy to try first based on the request shape, falls back to the other
// strategy on failure, and normalizes every outcome into a single error type.

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/progress"
)

// Strategy is one extraction approach: it resolves the URL into variants,
// picks one for the request, and streams it to disk, reporting through sink
// and honoring ctl at its checkpoints. Failures come back as *StrategyError;
// cancellation comes back as control.ErrCancelled, unwrapped.
type Strategy interface {
	Name() string
	Execute(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error)
}

// Orchestrator is the single entry point for downloads. The primary strategy
// handles plain video requests; the fallback strategy is strictly more
// capable (audio extraction, authenticated access, resolution ceilings) and
// is tried first whenever those capabilities are needed.
type Orchestrator struct {
	primary  Strategy
	fallback Strategy
	log      *zap.SugaredLogger
}

// NewOrchestrator wires the two strategies. log may be nil.
func NewOrchestrator(primary, fallback Strategy, log *zap.SugaredLogger) *Orchestrator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Orchestrator{primary: primary, fallback: fallback, log: log}
}

// Download resolves req into a file on disk and returns its absolute path.
// sink and ctl may be nil: a nil sink drops progress events, a nil ctl means
// the download is neither pausable nor cancellable.
//
// Errors: control.ErrCancelled on user cancellation, *DownloadError for every
// terminal failure. StrategyError never escapes this method.
func (o *Orchestrator) Download(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
	if sink == nil {
		sink = progress.Discard
	}
	if ctl == nil {
		ctl = control.New()
	}

	if err := req.Validate(); err != nil {
		return "", &DownloadError{Msg: err.Error(), Err: err}
	}
	if req.OutputDir == "" {
		req.OutputDir = "."
	}
	if err := platform.CreateDirectoryIfNotExists(req.OutputDir); err != nil {
		return "", &DownloadError{Msg: err.Error(), Err: err}
	}

	// Audio extraction and cookie auth are fallback-only capabilities, so
	// for those requests the fallback is the first and only attempt.
	if req.AudioOnly() || req.Authenticated() {
		path, err := o.fallback.Execute(ctx, req, sink, ctl)
		if err == nil {
			return path, nil
		}
		if errors.Is(err, control.ErrCancelled) {
			return "", control.ErrCancelled
		}
		return "", terminal(err)
	}

	path, err := o.primary.Execute(ctx, req, sink, ctl)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, control.ErrCancelled) {
		return "", control.ErrCancelled
	}

	o.log.Warnw("primary strategy failed, falling back",
		"strategy", o.primary.Name(), "url", req.URL, "error", err)

	path, err = o.fallback.Execute(ctx, req, sink, ctl)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, control.ErrCancelled) {
		return "", control.ErrCancelled
	}
	return "", terminal(err)
}

// terminal converts the last strategy failure into the error surfaced to the
// caller, keeping the strategy's human-readable message.
func terminal(err error) error {
	var sErr *StrategyError
	if errors.As(err, &sErr) {
		return &DownloadError{Msg: sErr.Message(), Err: err}
	}
	return &DownloadError{Msg: err.Error(), Err: err}
}
