package gateway

import (
	"context"
	"fmt"

	ai "github.com/greengold/carbonai"
)

// Execute dispatches a request to the matching operation. The result's
// Kind always equals the request's Kind.
func (g *Gateway) Execute(ctx context.Context, req ai.Request) (ai.Result, error) {
	switch r := req.(type) {
	case ai.SearchQuery:
		res, err := g.SearchEntity(ctx, r.Query)
		if err != nil {
			return nil, err
		}
		return res, nil
	case ai.MapsQuery:
		res, err := g.FindNearbyHubs(ctx, r.Location)
		if err != nil {
			return nil, err
		}
		res.Source = ai.KindMaps
		return res, nil
	case ai.RecommendationQuery:
		recs, err := g.GetRecommendations(ctx, r.Data)
		if err != nil {
			return nil, err
		}
		return recs, nil
	case ai.AnalysisQuery:
		a, err := g.GetDeepAnalysis(ctx, r.Data)
		if err != nil {
			return nil, err
		}
		return a, nil
	case ai.ImageQuery:
		img, err := g.GenerateImage(ctx, r.Prompt, r.Options...)
		if err != nil {
			return nil, err
		}
		return &ai.ImageResult{Image: img}, nil
	case ai.VideoQuery:
		url, err := g.GenerateVideo(ctx, r.Prompt, r.Options...)
		if err != nil {
			return nil, err
		}
		return &ai.VideoResult{URL: url}, nil
	case ai.SpeechQuery:
		audio, err := g.Speak(ctx, r.Text)
		if err != nil {
			return nil, err
		}
		return &ai.AudioResult{Audio: audio}, nil
	default:
		return nil, ai.NewError(ai.KindInvalidInput, fmt.Sprintf("unsupported request type %T", req), 0, nil)
	}
}
