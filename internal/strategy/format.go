package strategy

import (
	"fmt"

	"github.com/ytgrab/ytgrab/internal/model"
)

// audioFormatSelector picks the best available audio stream; the FFmpeg
// extraction postprocessor normalizes the container afterwards.
const audioFormatSelector = "bestaudio/best"

// audioQuality is the fixed target quality handed to the extraction
// postprocessor.
const audioQuality = "192K"

// videoFormatSelector builds the multi-tier yt-dlp format expression for
// video mode: the ideal adaptive MP4+M4A pair within the resolution ceiling,
// then any adaptive pair, then a progressive MP4 within the ceiling, then the
// absolute best available. Ties within a tier follow yt-dlp's own ranking.
func videoFormatSelector(resolution string) string {
	ceiling := ""
	if height := model.ParseResolution(resolution); height > 0 {
		ceiling = fmt.Sprintf("[height<=%d]", height)
	}
	return fmt.Sprintf(
		"bestvideo%s[ext=mp4]+bestaudio[ext=m4a]/bestvideo%s+bestaudio/best%s[ext=mp4][acodec!=none]/best",
		ceiling, ceiling, ceiling,
	)
}
