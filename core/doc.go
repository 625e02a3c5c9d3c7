// Package core contains the business logic for the tubefeed client.
// It is designed to be framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure value objects (Video, Transcript, ChannelInfo)
// - channel: The channel feed client with its accessors
// - errors: Custom error types for feed, extraction, and caption failures
// - interfaces: Contracts for external dependencies (HTTP, logger, captions)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	import (
//	    "tubefeed/core/channel"
//	    "tubefeed/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Captions:   myCaptions,   // implements interfaces.CaptionSource
//	}
//
//	client, err := channel.New(channel.Options{ChannelID: "UC..."}, deps)
//	if err != nil {
//	    // no valid channel identifier was supplied
//	}
//
//	video := client.LatestVideo(ctx)
package core
