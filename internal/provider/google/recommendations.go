package google

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	ai "github.com/greengold/carbonai"
	"google.golang.org/genai"
)

// recommendationSchema constrains the response to an array of
// recommendation objects with all four fields present and impact one of
// High, Medium or Low.
var recommendationSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"impact": {
				Type: genai.TypeString,
				Enum: []string{string(ai.ImpactHigh), string(ai.ImpactMedium), string(ai.ImpactLow)},
			},
			"savings": {Type: genai.TypeNumber},
		},
		Required: []string{"title", "description", "impact", "savings"},
	},
}

// GetRecommendations asks for 2-3 structured carbon reduction
// recommendations. An unparseable or empty answer yields an empty list;
// only backend failures are returned as errors.
func (c *Client) GetRecommendations(ctx context.Context, data map[string]any) (ai.RecommendationList, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, ai.NewError(ai.KindInvalidInput, "recommendation data is not serializable", 0, err)
	}

	prompt := fmt.Sprintf("Based on this sustainability data: %s, provide 2-3 specific AI-driven carbon reduction recommendations for the %s sector.", payload, industryOf(data))
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   recommendationSchema,
	}

	resp, err := c.generate(ctx, c.set.Recommendations, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}
	return parseRecommendations(responseText(resp)), nil
}

func industryOf(data map[string]any) string {
	if s, ok := data["industry"].(string); ok && s != "" {
		return s
	}
	return "specified"
}

// parseRecommendations decodes a JSON array of recommendations. Anything
// else, including an empty body, gives an empty non-nil list.
func parseRecommendations(text string) ai.RecommendationList {
	text = strings.TrimSpace(text)
	if text == "" {
		return ai.RecommendationList{}
	}
	var recs ai.RecommendationList
	if err := json.Unmarshal([]byte(text), &recs); err != nil || recs == nil {
		return ai.RecommendationList{}
	}
	return recs
}
