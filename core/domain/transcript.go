// ABOUTME: Transcript domain model represents a caption track for a video
// ABOUTME: Text is always the space-joined concatenation of segment texts

package domain

import "strings"

// TranscriptSegment is a single timed caption cue
type TranscriptSegment struct {
	// Text is the cue text
	Text string

	// Start is the cue start offset in seconds
	Start float64

	// Duration is the cue duration in seconds
	Duration float64
}

// Transcript represents the caption track retrieved for a video
type Transcript struct {
	// VideoID echoes the identifier the track was requested for
	VideoID string

	// Text is all segment texts joined with single spaces, in order
	Text string

	// Language is the language code actually returned
	Language string

	// Segments holds the timed cues in source order
	Segments []TranscriptSegment
}

// NewTranscript builds a Transcript, deriving Text from the segments
func NewTranscript(videoID, language string, segments []TranscriptSegment) *Transcript {
	texts := make([]string, len(segments))
	for i, seg := range segments {
		texts[i] = seg.Text
	}

	return &Transcript{
		VideoID:  videoID,
		Text:     strings.Join(texts, " "),
		Language: language,
		Segments: segments,
	}
}
