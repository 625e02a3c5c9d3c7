// ABOUTME: Video domain model represents a single entry from a channel feed
// ABOUTME: Immutable snapshot with no identity beyond its field values

package domain

import "time"

// UnknownChannel is the sentinel channel name used when the feed entry
// carries no author information.
const UnknownChannel = "Unknown Channel"

// Video represents one video entry parsed from a channel feed
type Video struct {
	// Title is the video's headline
	Title string

	// URL is the canonical watch URL
	URL string

	// VideoID is the platform's 11-character identifier
	VideoID string

	// PublishedAt is the publication time in UTC
	PublishedAt time.Time

	// Description contains the entry summary, may be empty
	Description string

	// ChannelName is the publishing channel, UnknownChannel when absent
	ChannelName string

	// Duration is optional and not populated by the feed parsing path
	Duration string
}

// IsValid checks if the video has the required fields
func (v Video) IsValid() bool {
	return v.Title != "" && v.VideoID != ""
}
