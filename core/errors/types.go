// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for feed, extraction, and caption failures

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FeedFetchError represents a failure to fetch or parse the channel feed
// after all retry attempts were exhausted
type FeedFetchError struct {
	URL      string
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *FeedFetchError) Error() string {
	return fmt.Sprintf("failed to fetch feed %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying error
func (e *FeedFetchError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a failure to extract a video ID from a URL
type ExtractionError struct {
	URL string
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract video ID from URL: %s", e.URL)
}

// CaptionsDisabledError indicates the video has captions turned off
type CaptionsDisabledError struct {
	VideoID string
}

// Error implements the error interface
func (e *CaptionsDisabledError) Error() string {
	return fmt.Sprintf("captions are disabled for video %s", e.VideoID)
}

// CaptionsNotFoundError indicates no caption track exists for the
// requested language
type CaptionsNotFoundError struct {
	VideoID  string
	Language string
}

// Error implements the error interface
func (e *CaptionsNotFoundError) Error() string {
	return fmt.Sprintf("no %s captions found for video %s", e.Language, e.VideoID)
}

// VideoUnavailableError indicates the video is removed, private, or
// otherwise gone
type VideoUnavailableError struct {
	VideoID string
}

// Error implements the error interface
func (e *VideoUnavailableError) Error() string {
	return fmt.Sprintf("video %s is unavailable", e.VideoID)
}

// RequestBlockedError indicates the caption service rejected the client
// as rate-limited or blocked
type RequestBlockedError struct {
	VideoID string
}

// Error implements the error interface
func (e *RequestBlockedError) Error() string {
	return fmt.Sprintf("caption request for video %s was blocked or rate limited", e.VideoID)
}

// ExternalAPIError represents an unexpected error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFeedFetch checks if an error is a FeedFetchError
func IsFeedFetch(err error) bool {
	var feedErr *FeedFetchError
	return errors.As(err, &feedErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extractionErr *ExtractionError
	return errors.As(err, &extractionErr)
}

// IsCaptionsDisabled checks if an error is a CaptionsDisabledError
func IsCaptionsDisabled(err error) bool {
	var disabledErr *CaptionsDisabledError
	return errors.As(err, &disabledErr)
}

// IsCaptionsNotFound checks if an error is a CaptionsNotFoundError
func IsCaptionsNotFound(err error) bool {
	var notFoundErr *CaptionsNotFoundError
	return errors.As(err, &notFoundErr)
}

// IsVideoUnavailable checks if an error is a VideoUnavailableError
func IsVideoUnavailable(err error) bool {
	var unavailableErr *VideoUnavailableError
	return errors.As(err, &unavailableErr)
}

// IsRequestBlocked checks if an error is a RequestBlockedError
func IsRequestBlocked(err error) bool {
	var blockedErr *RequestBlockedError
	return errors.As(err, &blockedErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsCaptionMiss reports whether an error is one of the per-language caption
// lookup misses that should fall through to the next language
func IsCaptionMiss(err error) bool {
	return IsCaptionsDisabled(err) || IsCaptionsNotFound(err)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
