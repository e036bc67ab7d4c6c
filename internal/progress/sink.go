package progress

// Package progress defines the normalized progress callback contract every
// download strategy reports through, plus the consumer-side throttling policy
// and a counting reader for byte-accurate progress.

// Sink receives progress events from a running strategy. A nil percent marks
// an indeterminate phase (merging, audio extraction); consumers must switch
// to an indeterminate visual state rather than treat it as 0. A non-nil
// percent is in [0,100]. The final event of a successful download is always
// (100, ""). No event is guaranteed on cancellation or failure.
type Sink func(percent *float64, message string)

// Value returns a pointer to p, for reporting determinate progress.
func Value(p float64) *float64 {
	return &p
}

// Discard is a Sink that drops every event. The orchestrator substitutes it
// when the caller passes a nil sink, so strategies never nil-check.
func Discard(*float64, string) {}
