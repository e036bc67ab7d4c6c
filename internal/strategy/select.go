package strategy

import (
	"errors"
	"fmt"

	"github.com/ytgrab/ytgrab/internal/model"
)

var (
	errNoAudioStreams       = errors.New("no audio streams available for this video")
	errNoProgressiveStreams = errors.New("no progressive MP4 streams available for this video")
)

// better orders two variants of the same kind. Resolution ties break on
// approximate size, then bitrate, then lower itag, so selection is
// deterministic for any input order.
func better(a, b model.Variant) bool {
	if a.Height() != b.Height() {
		return a.Height() > b.Height()
	}
	if a.ApproxSize != b.ApproxSize {
		return a.ApproxSize > b.ApproxSize
	}
	if a.Bitrate != b.Bitrate {
		return a.Bitrate > b.Bitrate
	}
	return a.Itag < b.Itag
}

// pickAudio selects the highest-bitrate audio-only variant.
func pickAudio(variants []model.Variant) (model.Variant, error) {
	var best model.Variant
	found := false
	for _, v := range variants {
		if !v.AudioOnly() {
			continue
		}
		if !found || v.Bitrate > best.Bitrate ||
			(v.Bitrate == best.Bitrate && better(v, best)) {
			best = v
			found = true
		}
	}
	if !found {
		return model.Variant{}, errNoAudioStreams
	}
	return best, nil
}

// pickVideo selects among progressive MP4 variants: the exact resolution
// match when a constraint is given, the highest resolution otherwise.
func pickVideo(variants []model.Variant, resolution string) (model.Variant, error) {
	var candidates []model.Variant
	for _, v := range variants {
		if v.Progressive() && v.Container == "mp4" {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return model.Variant{}, errNoProgressiveStreams
	}

	if resolution != "" {
		var best model.Variant
		found := false
		for _, v := range candidates {
			if v.Resolution != resolution {
				continue
			}
			if !found || better(v, best) {
				best = v
				found = true
			}
		}
		if !found {
			return model.Variant{}, fmt.Errorf("resolution %s not available for this video", resolution)
		}
		return best, nil
	}

	best := candidates[0]
	for _, v := range candidates[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best, nil
}
