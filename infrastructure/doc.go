// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging, and the caption service.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with timeout support
// - logger/logrus: Structured logger implementation on logrus
// - captions/timedtext: Caption source against the timedtext API
//
// # HTTP Client
//
// Each request is a single attempt bounded by the client timeout; retry
// policy lives with the feed client:
//
//	client := standard.NewStandardHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger()
//	logger.Info("Fetched channel feed", map[string]interface{}{
//	    "url":     feedURL,
//	    "entries": 15,
//	})
//
// # Caption Source
//
//	captions := timedtext.NewClient(httpClient, logger)
//	transcript, err := captions.Fetch(ctx, "jNQXAC9IVRw", "en")
package infrastructure
