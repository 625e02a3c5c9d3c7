// ABOUTME: Video ID extraction from watch, embed, and short URLs
// ABOUTME: Pure function with no network or client state

package channel

import (
	"regexp"

	cerrors "tubefeed/core/errors"
)

// videoIDPatterns match an 11-character identifier after "v=", "/embed/",
// or "youtu.be/", checked in that fixed order. Trailing query parameters
// fall outside the capture group and are ignored.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`v=([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID extracts the 11-character video identifier from a URL.
// Returns an ExtractionError when no pattern matches.
func ExtractVideoID(rawURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", &cerrors.ExtractionError{URL: rawURL}
}
