package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "channel",
		Message: "no channel identifier supplied",
	}

	expected := "validation error on field 'channel': no channel identifier supplied"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFeedFetchError_Error(t *testing.T) {
	err := &FeedFetchError{
		URL:      "https://www.youtube.com/feeds/videos.xml?channel_id=UC123",
		Attempts: 3,
		Err:      errors.New("feed contains no entries"),
	}

	expected := "failed to fetch feed https://www.youtube.com/feeds/videos.xml?channel_id=UC123 after 3 attempts: feed contains no entries"
	if err.Error() != expected {
		t.Errorf("FeedFetchError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFeedFetchError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &FeedFetchError{URL: "https://example.com/feed", Attempts: 3, Err: inner}

	if !errors.Is(err, inner) {
		t.Error("FeedFetchError should unwrap to the underlying error")
	}
}

func TestExtractionError_Error(t *testing.T) {
	err := &ExtractionError{URL: "https://example.com/page"}

	expected := "could not extract video ID from URL: https://example.com/page"
	if err.Error() != expected {
		t.Errorf("ExtractionError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "timedtext",
	}

	expected := "external API error from timedtext: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "feedURL",
		Message: "invalid URL",
	}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")

	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestIsFeedFetch_WrappedError(t *testing.T) {
	feedErr := &FeedFetchError{URL: "https://example.com/feed", Attempts: 3, Err: errors.New("boom")}
	wrapped := fmt.Errorf("latest video: %w", feedErr)

	if !IsFeedFetch(wrapped) {
		t.Error("IsFeedFetch should return true for wrapped FeedFetchError")
	}
}

func TestIsExtraction_True(t *testing.T) {
	err := &ExtractionError{URL: "not a video url"}

	if !IsExtraction(err) {
		t.Error("IsExtraction should return true for ExtractionError")
	}
}

func TestCaptionErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"disabled", &CaptionsDisabledError{VideoID: "jNQXAC9IVRw"}, IsCaptionsDisabled},
		{"not found", &CaptionsNotFoundError{VideoID: "jNQXAC9IVRw", Language: "en"}, IsCaptionsNotFound},
		{"unavailable", &VideoUnavailableError{VideoID: "jNQXAC9IVRw"}, IsVideoUnavailable},
		{"blocked", &RequestBlockedError{VideoID: "jNQXAC9IVRw"}, IsRequestBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.pred(tt.err) {
				t.Errorf("predicate should return true for %T", tt.err)
			}
			if tt.pred(errors.New("other")) {
				t.Errorf("predicate should return false for plain error")
			}
			// Wrapped errors keep their identity
			if !tt.pred(fmt.Errorf("lookup failed: %w", tt.err)) {
				t.Errorf("predicate should return true for wrapped %T", tt.err)
			}
		})
	}
}

func TestIsCaptionMiss(t *testing.T) {
	if !IsCaptionMiss(&CaptionsDisabledError{VideoID: "x"}) {
		t.Error("IsCaptionMiss should be true for CaptionsDisabledError")
	}
	if !IsCaptionMiss(&CaptionsNotFoundError{VideoID: "x", Language: "en"}) {
		t.Error("IsCaptionMiss should be true for CaptionsNotFoundError")
	}
	if IsCaptionMiss(&VideoUnavailableError{VideoID: "x"}) {
		t.Error("IsCaptionMiss should be false for VideoUnavailableError")
	}
	if IsCaptionMiss(&RequestBlockedError{VideoID: "x"}) {
		t.Error("IsCaptionMiss should be false for RequestBlockedError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &ExtractionError{URL: "https://example.com"}
	wrappedErr := WrapError(originalErr, "failed to resolve video")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to resolve video: could not extract video ID from URL: https://example.com"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsExtraction(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as ExtractionError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")

	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
