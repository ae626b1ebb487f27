package carbonai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestKinds(t *testing.T) {
	tests := []struct {
		req  Request
		kind Kind
	}{
		{SearchQuery{Query: "Acme Ltd"}, KindSearch},
		{MapsQuery{Location: "Leeds"}, KindMaps},
		{RecommendationQuery{}, KindRecommendation},
		{AnalysisQuery{}, KindAnalysis},
		{ImageQuery{Prompt: "wind farm"}, KindImage},
		{VideoQuery{Prompt: "wind farm"}, KindVideo},
		{SpeechQuery{Text: "hello"}, KindSpeech},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.req.Kind())
		})
	}
}

func TestResultKinds(t *testing.T) {
	assert.Equal(t, KindSearch, (&SearchResult{}).Kind())
	assert.Equal(t, KindMaps, (&SearchResult{Source: KindMaps}).Kind())
	assert.Equal(t, KindRecommendation, RecommendationList{}.Kind())
	assert.Equal(t, KindAnalysis, (&Analysis{}).Kind())
	assert.Equal(t, KindImage, (&ImageResult{}).Kind())
	assert.Equal(t, KindVideo, (&VideoResult{}).Kind())
	assert.Equal(t, KindSpeech, (&AudioResult{}).Kind())
}

func TestRecommendationJSON(t *testing.T) {
	raw := `[{"title":"LED retrofit","description":"Replace fluorescent tubes","impact":"High","savings":1200.5}]`

	var list RecommendationList
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 1)
	assert.Equal(t, Recommendation{
		Title:       "LED retrofit",
		Description: "Replace fluorescent tubes",
		Impact:      ImpactHigh,
		Savings:     1200.5,
	}, list[0])
}
