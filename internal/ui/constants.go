package ui

// Text fragments
const (
	ProgressLabelFormat = "%.0f%%"
)

// Resolution choices shown in the quality selector. The first entry means no
// ceiling; labels above 1080p follow the marketing names users look for.
var resolutionChoices = []resolutionChoice{
	{"Auto (best available)", ""},
	{"240p", "240p"},
	{"360p", "360p"},
	{"480p", "480p"},
	{"1K (1080p)", "1080p"},
	{"2K (1440p)", "1440p"},
	{"4K (2160p)", "2160p"},
	{"8K (4320p)", "4320p"},
}

type resolutionChoice struct {
	label string
	value string
}
