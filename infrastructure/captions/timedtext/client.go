// ABOUTME: Caption source implementation against YouTube's timedtext API
// ABOUTME: Maps service responses to the typed caption failure set

package timedtext

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"tubefeed/core/domain"
	cerrors "tubefeed/core/errors"
	"tubefeed/core/interfaces"
)

const baseURL = "https://www.youtube.com/api/timedtext"

// Client implements the CaptionSource interface using the timedtext API.
// One call fetches one video's track in one language.
type Client struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	endpoint   string
}

// NewClient creates a timedtext caption client
func NewClient(httpClient interfaces.HTTPClient, logger interfaces.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		endpoint:   baseURL,
	}
}

// timedtextResponse is the json3 document the API returns
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

// timedtextEvent is a single timed cue; events without segs carry window
// metadata and no text
type timedtextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Segs       []timedtextSeg `json:"segs,omitempty"`
}

// timedtextSeg is one text fragment within an event
type timedtextSeg struct {
	UTF8 string `json:"utf8"`
}

// Fetch retrieves the caption track for a video in a single language.
// Service failures map to the typed caption errors: a missing track is
// CaptionsNotFoundError, 403 is CaptionsDisabledError, 410 is
// VideoUnavailableError, and 429 is RequestBlockedError.
func (c *Client) Fetch(ctx context.Context, videoID, language string) (*domain.Transcript, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", language)
	params.Set("fmt", "json3")

	resp, err := c.httpClient.Get(ctx, c.endpoint+"?"+params.Encode())
	if err != nil {
		return nil, cerrors.WrapError(err, "timedtext request failed")
	}
	defer resp.Body().Close()

	switch resp.StatusCode() {
	case 200:
		// Fall through to parse
	case 404:
		return nil, &cerrors.CaptionsNotFoundError{VideoID: videoID, Language: language}
	case 403:
		return nil, &cerrors.CaptionsDisabledError{VideoID: videoID}
	case 410:
		return nil, &cerrors.VideoUnavailableError{VideoID: videoID}
	case 429:
		return nil, &cerrors.RequestBlockedError{VideoID: videoID}
	default:
		return nil, &cerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status from caption service",
			API:        "timedtext",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, cerrors.WrapError(err, "read timedtext response")
	}

	// The service answers 200 with an empty body when the video has no
	// track in the requested language
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, &cerrors.CaptionsNotFoundError{VideoID: videoID, Language: language}
	}

	segments, err := parseSegments(body)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, &cerrors.CaptionsNotFoundError{VideoID: videoID, Language: language}
	}

	if c.logger != nil {
		c.logger.Debug("Fetched caption track", map[string]interface{}{
			"video_id": videoID,
			"language": language,
			"segments": len(segments),
		})
	}

	return domain.NewTranscript(videoID, language, segments), nil
}

// parseSegments converts json3 events into transcript segments, in source
// order. Events without text are skipped.
func parseSegments(body []byte) ([]domain.TranscriptSegment, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, cerrors.WrapError(err, "parse timedtext response")
	}

	segments := make([]domain.TranscriptSegment, 0, len(resp.Events))
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		cue := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if cue == "" {
			continue
		}

		segments = append(segments, domain.TranscriptSegment{
			Text:     cue,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}

	return segments, nil
}
