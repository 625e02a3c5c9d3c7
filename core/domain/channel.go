// ABOUTME: ChannelInfo domain model holds top-level channel feed metadata
// ABOUTME: Absent fields default to "Unknown" or empty string at parse time

package domain

// ChannelInfo is a flat projection of the feed's channel-level metadata
type ChannelInfo struct {
	// Title is the channel title, "Unknown" when absent
	Title string

	// Link is the channel website URL
	Link string

	// Description is the channel description, may be empty
	Description string

	// Author is the channel author name, "Unknown" when absent
	Author string
}
