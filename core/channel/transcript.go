// ABOUTME: Transcript retrieval with ordered language preference and fallback
// ABOUTME: Non-fatal caption failures collapse to no-result, never errors

package channel

import (
	"context"
	"strings"

	"tubefeed/core/domain"
	cerrors "tubefeed/core/errors"
)

var (
	// defaultLanguages is the preferred-language list when none is given
	defaultLanguages = []string{"en"}

	// defaultFallbackLanguages is tried after the preferred list
	defaultFallbackLanguages = []string{"en", "en-US", "en-GB"}
)

// GetTranscript retrieves the caption track for a video URL or bare ID.
//
// Each preferred language is attempted in order, then each fallback language
// that was not already in the preferred list. Returns nil when no language
// yields a track, when the video is unavailable, or when the caption service
// reports the client blocked; the reason is logged but callers cannot
// distinguish these cases from the return value alone.
func (c *Client) GetTranscript(ctx context.Context, videoURL string, languages, fallbackLanguages []string) *domain.Transcript {
	videoID := videoURL
	if strings.Contains(videoURL, "youtube.com") || strings.Contains(videoURL, "youtu.be") {
		extracted, err := ExtractVideoID(videoURL)
		if err != nil {
			c.logError("Error resolving transcript video ID", map[string]interface{}{
				"url":   videoURL,
				"error": err.Error(),
			})
			return nil
		}
		videoID = extracted
	}

	if c.deps.Captions == nil {
		c.logError("Caption source not configured", nil)
		return nil
	}

	if languages == nil {
		languages = defaultLanguages
	}
	if fallbackLanguages == nil {
		fallbackLanguages = defaultFallbackLanguages
	}

	c.logDebug("Fetching transcript", map[string]interface{}{
		"video_id": videoID,
	})

	transcript, err := c.fetchTranscript(ctx, videoID, languages, fallbackLanguages)
	if err != nil {
		switch {
		case cerrors.IsVideoUnavailable(err):
			c.logError("Video is unavailable", map[string]interface{}{
				"video_id": videoID,
			})
		case cerrors.IsRequestBlocked(err):
			c.logError("Caption service rate limit exceeded or client blocked", map[string]interface{}{
				"video_id": videoID,
			})
		default:
			c.logError("Error retrieving transcript", map[string]interface{}{
				"video_id": videoID,
				"error":    err.Error(),
			})
		}
		return nil
	}

	if transcript == nil {
		c.logWarn("No transcript available for video", map[string]interface{}{
			"video_id": videoID,
		})
		return nil
	}

	return transcript
}

// fetchTranscript walks the language lists, stopping at the first track.
// A disabled or not-found answer moves on to the next language; unavailable,
// blocked, and transport errors abort the walk. A nil, nil return means no
// language yielded a track.
func (c *Client) fetchTranscript(ctx context.Context, videoID string, languages, fallbackLanguages []string) (*domain.Transcript, error) {
	for _, lang := range languages {
		transcript, err := c.deps.Captions.Fetch(ctx, videoID, lang)
		if err == nil {
			c.logInfo("Retrieved transcript", map[string]interface{}{
				"video_id": videoID,
				"language": lang,
			})
			return transcript, nil
		}
		if cerrors.IsCaptionMiss(err) {
			continue
		}
		return nil, err
	}

	for _, lang := range fallbackLanguages {
		if containsLanguage(languages, lang) {
			continue // already tried
		}
		transcript, err := c.deps.Captions.Fetch(ctx, videoID, lang)
		if err == nil {
			c.logInfo("Retrieved transcript in fallback language", map[string]interface{}{
				"video_id": videoID,
				"language": lang,
			})
			return transcript, nil
		}
		if cerrors.IsCaptionMiss(err) {
			continue
		}
		return nil, err
	}

	return nil, nil
}

// containsLanguage reports whether the language code is in the list
func containsLanguage(languages []string, lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
