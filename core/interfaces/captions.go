package interfaces

import (
	"context"

	"tubefeed/core/domain"
)

// CaptionSource defines the interface for the external caption service.
// Implementations query one video and one language code per call.
//
// A lookup either yields a full caption track or a typed failure from
// core/errors: CaptionsDisabledError, CaptionsNotFoundError,
// VideoUnavailableError, or RequestBlockedError. Any other error is an
// unexpected transport or decode failure.
type CaptionSource interface {
	// Fetch retrieves the caption track for a video in a single language.
	// The returned transcript's Language is the code the service actually
	// resolved, which may differ from the requested one.
	Fetch(ctx context.Context, videoID, language string) (*domain.Transcript, error)
}
