package strategy

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkdai/youtube/v2"
	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/control"
	"github.com/ytgrab/ytgrab/internal/fetch"
	"github.com/ytgrab/ytgrab/internal/model"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/progress"
)

const nativeName = "native"

// Native is the primary strategy: a pure-Go extraction client with no
// external processes. It handles plain video requests with progressive MP4
// streams and unauthenticated audio listing; everything beyond that is the
// fallback strategy's job.
type Native struct {
	client youtube.Client
	log    *zap.SugaredLogger
}

// NewNative returns the primary strategy. log may be nil.
func NewNative(log *zap.SugaredLogger) *Native {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Native{log: log}
}

func (s *Native) Name() string { return nativeName }

// Execute resolves the URL eagerly, picks a variant for the request, and
// streams it to disk with per-chunk progress and cancellation checks.
func (s *Native) Execute(ctx context.Context, req model.DownloadRequest, sink progress.Sink, ctl *control.Control) (string, error) {
	if sink == nil {
		sink = progress.Discard
	}
	if ctl == nil {
		ctl = control.New()
	}

	if err := ctl.ErrIfCancelled(); err != nil {
		return "", err
	}

	video, err := s.client.GetVideoContext(ctx, req.URL)
	if err != nil {
		return "", fetch.Fail(nativeName, err)
	}

	variants, byItag := variantsFromFormats(video.Formats)

	var chosen model.Variant
	if req.AudioOnly() {
		chosen, err = pickAudio(variants)
	} else {
		chosen, err = pickVideo(variants, req.WantResolution())
	}
	if err != nil {
		return "", fetch.Fail(nativeName, err)
	}

	// Checkpoint between selection and transfer: fail fast on cancel, then
	// honor a pending pause before any bytes move.
	if err := ctl.Checkpoint(); err != nil {
		return "", err
	}

	format := byItag[chosen.Itag]
	stream, size, err := s.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return "", fetch.Fail(nativeName, err)
	}
	defer stream.Close()
	if size <= 0 {
		size = chosen.ApproxSize
	}

	dest := filepath.Join(req.OutputDir, nativeFilename(req, video.Title, chosen))
	s.log.Debugw("streaming variant", "url", req.URL, "itag", chosen.Itag, "dest", dest)

	out, err := os.Create(dest)
	if err != nil {
		return "", fetch.Fail(nativeName, err)
	}

	counted := progress.NewReader(stream, size, sink, ctl)
	if _, err := io.Copy(out, counted); err != nil {
		out.Close()
		os.Remove(dest)
		if errors.Is(err, control.ErrCancelled) {
			return "", control.ErrCancelled
		}
		return "", fetch.Fail(nativeName, err)
	}
	if err := out.Close(); err != nil {
		return "", fetch.Fail(nativeName, err)
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}
	// The reader already emitted (100, "") when the size estimate was exact;
	// emit it here only when the stream came up short of the estimate.
	if size <= 0 || counted.BytesRead() < size {
		sink(progress.Value(100), "")
	}
	return abs, nil
}

// variantsFromFormats normalizes the client's format list into variants and
// keeps the original formats addressable by itag for the transfer step.
func variantsFromFormats(formats []youtube.Format) ([]model.Variant, map[int]*youtube.Format) {
	variants := make([]model.Variant, 0, len(formats))
	byItag := make(map[int]*youtube.Format, len(formats))
	for i := range formats {
		f := &formats[i]
		byItag[f.ItagNo] = f
		variants = append(variants, model.Variant{
			Itag:       f.ItagNo,
			Container:  containerOf(f.MimeType),
			Resolution: f.QualityLabel,
			Bitrate:    f.Bitrate,
			HasVideo:   f.QualityLabel != "",
			HasAudio:   f.AudioQuality != "",
			ApproxSize: f.ContentLength,
		})
	}
	return variants, byItag
}

// containerOf extracts the container name from a MIME type such as
// `video/mp4; codecs="avc1.42001E, mp4a.40.2"`.
func containerOf(mimeType string) string {
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	if idx := strings.Index(mimeType, "/"); idx >= 0 {
		return strings.TrimSpace(mimeType[idx+1:])
	}
	return strings.TrimSpace(mimeType)
}

// nativeFilename resolves the output file name: the caller's filename when
// given (natural extension appended when it has none), the sanitized remote
// title otherwise.
func nativeFilename(req model.DownloadRequest, title string, chosen model.Variant) string {
	ext := "." + nativeExtension(chosen)
	if req.Filename != "" {
		if filepath.Ext(req.Filename) != "" {
			return req.Filename
		}
		return req.Filename + ext
	}
	return platform.SanitizeFilename(title) + ext
}

// nativeExtension is the natural extension of a selected variant: mp4 for
// progressive video, the audio container's conventional extension otherwise.
func nativeExtension(v model.Variant) string {
	if !v.AudioOnly() {
		return "mp4"
	}
	if v.Container == "mp4" {
		return "m4a"
	}
	return v.Container
}
