// Package carbonai holds the shared types of the carbon intelligence AI
// gateway: requests, results, credentials and classified errors.
//
// The gateway itself lives in [github.com/greengold/carbonai/gateway]. It
// turns each request into a call against Google Gemini and returns a
// typed result:
//
//   - [SearchQuery]: company lookup grounded on web search
//   - [MapsQuery]: nearby sustainability hubs grounded on maps
//   - [RecommendationQuery]: 2-3 structured reduction recommendations
//   - [AnalysisQuery]: a 12-month decarbonization roadmap
//   - [ImageQuery]: an illustrative image at 1K, 2K or 4K
//   - [VideoQuery]: a short video, returned as a download URL
//   - [SpeechQuery]: spoken audio as raw 16-bit PCM
//
// # Basic Usage
//
//	g := gateway.New(gateway.Config{})
//	res, err := g.Execute(ctx, carbonai.SearchQuery{Query: "Acme Manufacturing Ltd"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.(*carbonai.SearchResult).Text)
//
// # Credentials
//
// [Credentials] resolves the API key on every call: API_KEY first, then a
// key baked in at build time, then VITE_API_KEY. A missing key is logged
// once per call and the call fails with [KindAuthMissing].
//
// # Error Handling
//
// Every gateway error carries an [ErrorKind]:
//
//	if carbonai.IsKind(err, carbonai.KindEntityNotFound) {
//	    // prompt the user to select a different key
//	}
//	if carbonai.IsRetryable(err) {
//	    // 429 or 5xx from the backend
//	}
package carbonai
