// ABOUTME: Channel client fetches a YouTube channel's video feed and normalizes entries
// ABOUTME: Provides latest-video, 24-hour-window, and channel-info accessors

package channel

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tubefeed/core/domain"
	cerrors "tubefeed/core/errors"
	"tubefeed/core/interfaces"

	"github.com/mmcdole/gofeed"
)

const (
	// feedBaseURL is the channel feed endpoint
	feedBaseURL = "https://www.youtube.com/feeds/videos.xml"

	// defaultMaxRetries is the feed fetch retry ceiling
	defaultMaxRetries = 3

	// recentWindow is the lookback window for VideosLast24Hours
	recentWindow = 24 * time.Hour
)

// Options configures a channel Client. At least one of FeedURL, ChannelID,
// or ChannelUsername must be set; FeedURL takes precedence when several are.
type Options struct {
	// ChannelID is the channel identifier (e.g. "UC...")
	ChannelID string

	// ChannelUsername is the channel user name, with or without a leading "@"
	ChannelUsername string

	// FeedURL is a direct feed URL, used verbatim when set
	FeedURL string

	// MaxRetries is the feed fetch attempt ceiling, default 3
	MaxRetries int
}

// Client retrieves video metadata and transcripts for one channel.
// The resolved feed URL is fixed for the lifetime of the instance, and no
// state is shared between calls; every accessor fetches the feed fresh.
type Client struct {
	deps       interfaces.Dependencies
	feedURL    string
	maxRetries int
}

// New creates a channel Client with the resolved feed URL.
// Returns a ValidationError when no channel identifier is supplied.
func New(opts Options, deps interfaces.Dependencies) (*Client, error) {
	feedURL, err := resolveFeedURL(opts)
	if err != nil {
		return nil, err
	}

	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	c := &Client{
		deps:       deps,
		feedURL:    feedURL,
		maxRetries: maxRetries,
	}

	c.logInfo("Initialized channel client", map[string]interface{}{
		"feed_url": feedURL,
	})

	return c, nil
}

// FeedURL returns the resolved feed URL
func (c *Client) FeedURL() string {
	return c.feedURL
}

// resolveFeedURL builds the feed URL from the channel identifier inputs
func resolveFeedURL(opts Options) (string, error) {
	if opts.FeedURL != "" {
		return opts.FeedURL, nil
	}

	if opts.ChannelID != "" {
		return feedBaseURL + "?channel_id=" + opts.ChannelID, nil
	}

	if opts.ChannelUsername != "" {
		username := strings.TrimPrefix(opts.ChannelUsername, "@")
		return feedBaseURL + "?user=" + username, nil
	}

	return "", &cerrors.ValidationError{
		Field:   "channel",
		Message: "must provide either ChannelID, ChannelUsername, or FeedURL",
	}
}

// FetchFeed fetches and parses the channel feed, retrying up to the
// configured attempt ceiling with no delay between attempts. A parse error
// or a feed with zero entries counts as a failed attempt. After exhausting
// all attempts the most recent error is returned as a FeedFetchError.
//
// This is the only routine that propagates errors; the accessors built on
// top of it swallow them and return no-result instead.
func (c *Client) FetchFeed(ctx context.Context) (*gofeed.Feed, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		c.logDebug("Fetching channel feed", map[string]interface{}{
			"url":     c.feedURL,
			"attempt": attempt,
			"max":     c.maxRetries,
		})

		feed, err := c.fetchFeedOnce(ctx)
		if err == nil {
			c.logInfo("Successfully parsed feed", map[string]interface{}{
				"url":     c.feedURL,
				"entries": len(feed.Items),
			})
			return feed, nil
		}

		lastErr = err
		if attempt < c.maxRetries {
			c.logWarn("Feed fetch attempt failed, retrying", map[string]interface{}{
				"url":     c.feedURL,
				"attempt": attempt,
				"error":   err.Error(),
			})
		}
	}

	c.logError("Failed to fetch feed after all attempts", map[string]interface{}{
		"url":      c.feedURL,
		"attempts": c.maxRetries,
		"error":    lastErr.Error(),
	})

	return nil, &cerrors.FeedFetchError{
		URL:      c.feedURL,
		Attempts: c.maxRetries,
		Err:      lastErr,
	}
}

// fetchFeedOnce performs a single fetch-and-parse attempt
func (c *Client) fetchFeedOnce(ctx context.Context) (*gofeed.Feed, error) {
	if c.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := c.deps.HTTPClient.Get(ctx, c.feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &cerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        "feed",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, cerrors.WrapError(err, "invalid feed")
	}

	if len(feed.Items) == 0 {
		return nil, errors.New("feed contains no entries")
	}

	return feed, nil
}

// videoFromItem normalizes a feed entry into a Video
func (c *Client) videoFromItem(item *gofeed.Item) (domain.Video, error) {
	videoID := videoIDExtension(item)
	if videoID == "" {
		extracted, err := ExtractVideoID(item.Link)
		if err != nil {
			return domain.Video{}, err
		}
		videoID = extracted
	}

	publishedAt := time.Now().UTC()
	if item.PublishedParsed != nil {
		publishedAt = item.PublishedParsed.UTC().Truncate(time.Second)
	}

	channelName := domain.UnknownChannel
	if item.Author != nil && item.Author.Name != "" {
		channelName = item.Author.Name
	}

	return domain.Video{
		Title:       item.Title,
		URL:         item.Link,
		VideoID:     videoID,
		PublishedAt: publishedAt,
		Description: entryDescription(item),
		ChannelName: channelName,
	}, nil
}

// videoIDExtension reads the provider's videoId extension field, if present
func videoIDExtension(item *gofeed.Item) string {
	yt, ok := item.Extensions["yt"]
	if !ok {
		return ""
	}
	ids, ok := yt["videoId"]
	if !ok || len(ids) == 0 {
		return ""
	}
	return ids[0].Value
}

// entryDescription reads the entry summary, falling back to the media
// extension's group description that channel feeds carry instead
func entryDescription(item *gofeed.Item) string {
	if item.Description != "" {
		return item.Description
	}

	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	groups, ok := media["group"]
	if !ok || len(groups) == 0 {
		return ""
	}
	descs, ok := groups[0].Children["description"]
	if !ok || len(descs) == 0 {
		return ""
	}
	return descs[0].Value
}

// LatestVideo returns the newest video in the feed, or nil if the feed is
// empty or any step fails. Errors are logged, never propagated.
func (c *Client) LatestVideo(ctx context.Context) *domain.Video {
	feed, err := c.FetchFeed(ctx)
	if err != nil {
		c.logError("Error retrieving latest video", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	if len(feed.Items) == 0 {
		c.logWarn("No videos found in feed", nil)
		return nil
	}

	// Feed is sorted by date, newest first
	video, err := c.videoFromItem(feed.Items[0])
	if err != nil {
		c.logError("Error parsing latest video entry", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	c.logInfo("Retrieved latest video", map[string]interface{}{
		"title": video.Title,
	})

	return &video
}

// VideosLast24Hours returns the videos published within the last 24 hours,
// newest first. Returns an empty slice on total failure. An entry that fails
// to normalize is skipped with a warning.
func (c *Client) VideosLast24Hours(ctx context.Context) []domain.Video {
	feed, err := c.FetchFeed(ctx)
	if err != nil {
		c.logError("Error retrieving videos from last 24 hours", map[string]interface{}{
			"error": err.Error(),
		})
		return []domain.Video{}
	}

	videos := c.videosSince(feed, time.Now().UTC().Add(-recentWindow))

	c.logInfo("Found videos from last 24 hours", map[string]interface{}{
		"count": len(videos),
	})

	return videos
}

// videosSince collects normalized entries published at or after the cutoff.
// The walk stops at the first entry strictly before the cutoff; the feed is
// assumed newest-first, so nothing past that point can qualify.
func (c *Client) videosSince(feed *gofeed.Feed, cutoff time.Time) []domain.Video {
	videos := make([]domain.Video, 0, len(feed.Items))

	for _, item := range feed.Items {
		video, err := c.videoFromItem(item)
		if err != nil {
			c.logWarn("Error parsing video entry", map[string]interface{}{
				"link":  item.Link,
				"error": err.Error(),
			})
			continue
		}

		if video.PublishedAt.Before(cutoff) {
			break
		}

		videos = append(videos, video)
	}

	return videos
}

// ChannelInfo returns top-level channel metadata from the feed, or nil on
// any fetch or parse failure.
func (c *Client) ChannelInfo(ctx context.Context) *domain.ChannelInfo {
	feed, err := c.FetchFeed(ctx)
	if err != nil {
		c.logError("Error retrieving channel info", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	info := &domain.ChannelInfo{
		Title:       "Unknown",
		Link:        feed.Link,
		Description: feed.Description,
		Author:      "Unknown",
	}
	if feed.Title != "" {
		info.Title = feed.Title
	}
	if feed.Author != nil && feed.Author.Name != "" {
		info.Author = feed.Author.Name
	}

	return info
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, fields)
	}
}

func (c *Client) logInfo(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Info(msg, fields)
	}
}

func (c *Client) logWarn(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Warn(msg, fields)
	}
}

func (c *Client) logError(msg string, fields map[string]interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Error(msg, fields)
	}
}
