package google

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/greengold/carbonai"
	"google.golang.org/genai"
)

// AnalysisThinkingBudget is the reasoning token budget for deep analysis.
const AnalysisThinkingBudget int32 = 32768

// GetDeepAnalysis produces a 12-month decarbonization roadmap for data.
// The full backend response is kept in Analysis.Raw.
func (c *Client) GetDeepAnalysis(ctx context.Context, data map[string]any) (*ai.Analysis, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, ai.NewError(ai.KindInvalidInput, "analysis data is not serializable", 0, err)
	}

	prompt := fmt.Sprintf("Analyze this sustainability dataset deeply: %s. Provide a strategic 12-month decarbonization roadmap for an enterprise in this sector.", payload)
	config := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(AnalysisThinkingBudget),
		},
	}

	resp, err := c.generate(ctx, c.set.Analysis, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}
	return &ai.Analysis{Text: responseText(resp), Raw: resp}, nil
}
