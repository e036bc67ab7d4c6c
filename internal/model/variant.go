package model

import (
	"strconv"
	"strings"
)

// Variant is one selectable quality/format rendition of a remote media
// resource. Variants are produced by a strategy's resolution step and are
// never persisted.
type Variant struct {
	Itag       int
	Container  string // "mp4", "webm", ...
	Resolution string // "720p" style label, empty for audio-only variants
	Bitrate    int    // average bits per second
	HasVideo   bool
	HasAudio   bool
	ApproxSize int64 // bytes, 0 when unknown
}

// Progressive reports whether audio and video are already combined in a
// single stream.
func (v Variant) Progressive() bool {
	return v.HasVideo && v.HasAudio
}

// AudioOnly reports whether the variant carries audio without video.
func (v Variant) AudioOnly() bool {
	return v.HasAudio && !v.HasVideo
}

// Height returns the numeric part of the resolution label ("1080p" -> 1080),
// or 0 when the label is empty or malformed.
func (v Variant) Height() int {
	return ParseResolution(v.Resolution)
}

// ParseResolution extracts the leading number from a resolution label such as
// "1080p" or "1080p60". Returns 0 when no number is present.
func ParseResolution(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}
