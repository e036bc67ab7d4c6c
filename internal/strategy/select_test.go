package strategy

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytgrab/ytgrab/internal/model"
)

// fakeVariants mirrors a typical resource: three progressive MP4 renditions,
// one adaptive video-only track, two audio tracks.
func fakeVariants() []model.Variant {
	return []model.Variant{
		{Itag: 18, Container: "mp4", Resolution: "360p", Bitrate: 500_000, HasVideo: true, HasAudio: true, ApproxSize: 10 << 20},
		{Itag: 22, Container: "mp4", Resolution: "720p", Bitrate: 1_500_000, HasVideo: true, HasAudio: true, ApproxSize: 40 << 20},
		{Itag: 37, Container: "mp4", Resolution: "1080p", Bitrate: 3_000_000, HasVideo: true, HasAudio: true, ApproxSize: 90 << 20},
		{Itag: 137, Container: "mp4", Resolution: "1080p", Bitrate: 4_000_000, HasVideo: true, HasAudio: false, ApproxSize: 80 << 20},
		{Itag: 140, Container: "mp4", Bitrate: 128_000, HasAudio: true, ApproxSize: 4 << 20},
		{Itag: 251, Container: "webm", Bitrate: 160_000, HasAudio: true, ApproxSize: 5 << 20},
	}
}

func TestPickVideoExactResolution(t *testing.T) {
	v, err := pickVideo(fakeVariants(), "720p")
	if err != nil {
		t.Fatalf("Expected a match, got %v", err)
	}
	if v.Itag != 22 {
		t.Errorf("Expected the 720p progressive variant (itag 22), got itag %d", v.Itag)
	}
}

func TestPickVideoUnavailableResolutionNamesIt(t *testing.T) {
	_, err := pickVideo(fakeVariants(), "4320p")
	if err == nil {
		t.Fatal("Expected an error for an unavailable resolution")
	}
	if !strings.Contains(err.Error(), "4320p") {
		t.Errorf("Expected message to name '4320p', got '%s'", err)
	}
}

func TestPickVideoHighestWhenUnconstrained(t *testing.T) {
	v, err := pickVideo(fakeVariants(), "")
	if err != nil {
		t.Fatalf("Expected a match, got %v", err)
	}
	// Itag 137 is adaptive (no audio) and must lose to the 1080p progressive.
	if v.Itag != 37 {
		t.Errorf("Expected the 1080p progressive variant (itag 37), got itag %d", v.Itag)
	}
}

func TestPickVideoNoProgressiveStreams(t *testing.T) {
	variants := []model.Variant{
		{Itag: 137, Container: "mp4", Resolution: "1080p", HasVideo: true},
		{Itag: 140, Container: "mp4", HasAudio: true},
	}
	if _, err := pickVideo(variants, ""); !errors.Is(err, errNoProgressiveStreams) {
		t.Errorf("Expected errNoProgressiveStreams, got %v", err)
	}
}

func TestPickAudioHighestBitrate(t *testing.T) {
	v, err := pickAudio(fakeVariants())
	if err != nil {
		t.Fatalf("Expected a match, got %v", err)
	}
	if v.Itag != 251 {
		t.Errorf("Expected the 160k audio variant (itag 251), got itag %d", v.Itag)
	}
}

func TestPickAudioNoneAvailable(t *testing.T) {
	variants := []model.Variant{
		{Itag: 22, Container: "mp4", Resolution: "720p", HasVideo: true, HasAudio: true},
	}
	if _, err := pickAudio(variants); !errors.Is(err, errNoAudioStreams) {
		t.Errorf("Expected errNoAudioStreams, got %v", err)
	}
}

func TestResolutionTieBreakIsDeterministic(t *testing.T) {
	variants := []model.Variant{
		{Itag: 90, Container: "mp4", Resolution: "720p", Bitrate: 1_000_000, HasVideo: true, HasAudio: true, ApproxSize: 30 << 20},
		{Itag: 91, Container: "mp4", Resolution: "720p", Bitrate: 1_000_000, HasVideo: true, HasAudio: true, ApproxSize: 35 << 20},
	}
	for i := 0; i < 3; i++ {
		v, err := pickVideo(variants, "720p")
		if err != nil {
			t.Fatalf("Expected a match, got %v", err)
		}
		if v.Itag != 91 {
			t.Errorf("Expected the larger file to win the tie, got itag %d", v.Itag)
		}
	}
}
