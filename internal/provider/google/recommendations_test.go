package google

import (
	"context"
	"math"
	"testing"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGetRecommendations(t *testing.T) {
	t.Run("builds structured request", func(t *testing.T) {
		m := &fakeModels{resp: textResponse(&genai.Part{Text: `[{"title":"LED retrofit","description":"Swap lighting","impact":"High","savings":12.5}]`})}
		c := newTestClient(m, nil)

		recs, err := c.GetRecommendations(context.Background(), map[string]any{"industry": "Logistics", "emissions": 1200})
		require.NoError(t, err)

		assert.Equal(t, model.Gemini3FlashPreview, m.model)
		assert.Equal(t, `Based on this sustainability data: {"emissions":1200,"industry":"Logistics"}, provide 2-3 specific AI-driven carbon reduction recommendations for the Logistics sector.`, m.prompt())
		assert.Equal(t, "application/json", m.config.ResponseMIMEType)
		require.NotNil(t, m.config.ResponseSchema)
		assert.Equal(t, genai.TypeArray, m.config.ResponseSchema.Type)
		assert.ElementsMatch(t, []string{"title", "description", "impact", "savings"}, m.config.ResponseSchema.Items.Required)
		assert.Equal(t, genai.TypeNumber, m.config.ResponseSchema.Items.Properties["savings"].Type)
		impact := m.config.ResponseSchema.Items.Properties["impact"]
		assert.Equal(t, genai.TypeString, impact.Type)
		assert.Equal(t, []string{"High", "Medium", "Low"}, impact.Enum)

		assert.Equal(t, ai.RecommendationList{
			{Title: "LED retrofit", Description: "Swap lighting", Impact: ai.ImpactHigh, Savings: 12.5},
		}, recs)
	})

	t.Run("defaults the sector", func(t *testing.T) {
		m := &fakeModels{resp: textResponse(&genai.Part{Text: "[]"})}
		c := newTestClient(m, nil)

		_, err := c.GetRecommendations(context.Background(), map[string]any{"emissions": 5})
		require.NoError(t, err)
		assert.Contains(t, m.prompt(), "for the specified sector.")
	})

	t.Run("unserializable data", func(t *testing.T) {
		m := &fakeModels{}
		c := newTestClient(m, nil)

		_, err := c.GetRecommendations(context.Background(), map[string]any{"bad": math.Inf(1)})
		assert.True(t, ai.IsKind(err, ai.KindInvalidInput))
		assert.Zero(t, m.calls)
	})

	t.Run("backend errors propagate", func(t *testing.T) {
		m := &fakeModels{err: genai.APIError{Code: 500}}
		c := newTestClient(m, nil)

		recs, err := c.GetRecommendations(context.Background(), nil)
		assert.Nil(t, recs)
		assert.Error(t, err)
	})
}

func TestParseRecommendations(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ai.RecommendationList
	}{
		{
			name: "well formed",
			text: `[{"title":"Solar PV","description":"Roof array","impact":"Medium","savings":40},{"title":"Fleet EVs","description":"Electrify vans","impact":"Low","savings":7.25}]`,
			want: ai.RecommendationList{
				{Title: "Solar PV", Description: "Roof array", Impact: ai.ImpactMedium, Savings: 40},
				{Title: "Fleet EVs", Description: "Electrify vans", Impact: ai.ImpactLow, Savings: 7.25},
			},
		},
		{name: "empty array", text: "[]", want: ai.RecommendationList{}},
		{name: "not json", text: "not json", want: ai.RecommendationList{}},
		{name: "empty text", text: "", want: ai.RecommendationList{}},
		{name: "null", text: "null", want: ai.RecommendationList{}},
		{name: "object instead of array", text: `{"title":"x"}`, want: ai.RecommendationList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRecommendations(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRecommendationsEmptyResponse(t *testing.T) {
	m := &fakeModels{resp: &genai.GenerateContentResponse{}}
	c := newTestClient(m, nil)

	recs, err := c.GetRecommendations(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}
