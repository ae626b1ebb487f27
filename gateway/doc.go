// Package gateway is the single point of access to the Gemini API for the
// carbon intelligence tools.
//
// The Gateway provides:
//
//   - Fresh credential resolution: the API key is looked up on every call
//   - Typed results: each operation returns a narrow result type
//   - Bounded video polling: long renders are polled on a fixed interval
//   - Opt-in retries: transient failures are retried only when configured
//   - Event emission: observable operations via channel
//
// # Basic Usage
//
//	g := gateway.New(gateway.Config{})
//
//	res, err := g.SearchEntity(ctx, "Acme Renewables Ltd")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Text)
//	for _, src := range res.Sources {
//	    fmt.Println(src.Title, src.URI)
//	}
//
// # Credentials
//
// The key comes from API_KEY, then a key baked into the binary, then
// VITE_API_KEY. When none is set the gateway logs a warning and the call
// fails with an auth_missing error:
//
//	_, err := g.Speak(ctx, "Scope 2 emissions fell by 12%.")
//	if ai.NeedsReauth(err) {
//	    // prompt for a key and try again
//	}
//
// # Tagged Requests
//
// Execute accepts any request type and returns the matching result type:
//
//	res, err := g.Execute(ctx, ai.ImageQuery{
//	    Prompt:  "A wind farm at dawn",
//	    Options: []ai.ImageOption{ai.WithImageSize(ai.ImageSize2K)},
//	})
//	img := res.(*ai.ImageResult).Image
//
// # Video
//
// GenerateVideo blocks until the render finishes, polling every
// PollInterval up to MaxPolls times. Cancel the context to stop early:
//
//	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
//	defer cancel()
//	url, err := g.GenerateVideo(ctx, "Solar panels tracking the sun")
//
// # Retry Configuration
//
// Calls are attempted once unless a retry policy is configured:
//
//	cfg := retry.DefaultConfig()
//	g := gateway.New(gateway.Config{Retry: &cfg})
//
// # Events
//
// Observe operations via an event channel:
//
//	events := make(chan gateway.Event, 100)
//	g := gateway.New(gateway.Config{Events: events})
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s took %v\n", e.Type, e.Operation, e.Duration)
//	    }
//	}()
package gateway
