// ABOUTME: Main entry point for the tubefeed CLI
// ABOUTME: Wires config, logger, transport, and caption source into a channel client

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"tubefeed/core/channel"
	"tubefeed/core/interfaces"
	"tubefeed/infrastructure/captions/timedtext"
	stdhttp "tubefeed/infrastructure/http/standard"
	logruslogger "tubefeed/infrastructure/logger/logrus"
	"tubefeed/pkg/config"
)

const usage = `usage: tubefeed <command> [args]

commands:
  latest              print the channel's newest video
  recent              print videos published in the last 24 hours
  info                print channel metadata
  transcript <url>    print the transcript for a video URL or ID

channel selection via environment: CHANNEL_ID, CHANNEL_USERNAME, or FEED_URL`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger()
	logger.SetDebug(cfg.HTTP.Debug)

	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second)

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
		Captions:   timedtext.NewClient(httpClient, logger),
	}

	client, err := channel.New(channel.Options{
		ChannelID:       cfg.Channel.ID,
		ChannelUsername: cfg.Channel.Username,
		FeedURL:         cfg.Channel.FeedURL,
		MaxRetries:      cfg.HTTP.MaxRetries,
	}, deps)
	if err != nil {
		log.Fatalf("Failed to create channel client: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "latest":
		video := client.LatestVideo(ctx)
		if video == nil {
			fmt.Println("no video found")
			return
		}
		fmt.Printf("%s\n%s\npublished %s by %s\n",
			video.Title, video.URL, video.PublishedAt.Format(time.RFC3339), video.ChannelName)

	case "recent":
		videos := client.VideosLast24Hours(ctx)
		if len(videos) == 0 {
			fmt.Println("no videos in the last 24 hours")
			return
		}
		for _, video := range videos {
			fmt.Printf("%s  %s  %s\n", video.PublishedAt.Format(time.RFC3339), video.VideoID, video.Title)
		}

	case "info":
		info := client.ChannelInfo(ctx)
		if info == nil {
			fmt.Println("no channel info available")
			return
		}
		fmt.Printf("title: %s\nlink: %s\nauthor: %s\ndescription: %s\n",
			info.Title, info.Link, info.Author, info.Description)

	case "transcript":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		transcript := client.GetTranscript(ctx, os.Args[2], nil, nil)
		if transcript == nil {
			fmt.Println("no transcript available")
			return
		}
		fmt.Printf("language: %s (%d segments)\n\n%s\n",
			transcript.Language, len(transcript.Segments), transcript.Text)

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}
