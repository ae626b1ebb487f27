package carbonai

// NoSearchResultText is returned as the search text when the backend
// produces none.
const NoSearchResultText = "No information found for this query."

// Result is the outcome of a Request. Its Kind always matches the Kind of
// the request that produced it.
type Result interface {
	Kind() Kind
	isResult()
}

// Citation is a grounding source attached to a search answer.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult is a grounded text answer. It answers both SearchQuery and
// MapsQuery; Source records which.
type SearchResult struct {
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
	Source  Kind       `json:"-"`
}

// Impact is the expected effect of a recommendation.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
	ImpactLow    Impact = "Low"
)

// Recommendation is one carbon reduction suggestion.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      Impact  `json:"impact"`
	Savings     float64 `json:"savings"`
}

// RecommendationList answers a RecommendationQuery.
type RecommendationList []Recommendation

// Analysis answers an AnalysisQuery. Raw holds the backend's full response
// for callers that need metadata beyond the text.
type Analysis struct {
	Text string
	Raw  any
}

// ImageResult answers an ImageQuery. Image is nil when the backend
// returned no image part.
type ImageResult struct {
	Image *Image
}

// VideoResult answers a VideoQuery.
type VideoResult struct {
	// URL is the download link with the credential attached.
	URL string
}

// AudioResult answers a SpeechQuery. Audio is nil when the backend
// returned no audio part.
type AudioResult struct {
	Audio *Audio
}

// Kind reports KindMaps for maps-grounded results, KindSearch otherwise.
func (r *SearchResult) Kind() Kind {
	if r.Source == KindMaps {
		return KindMaps
	}
	return KindSearch
}

func (RecommendationList) Kind() Kind { return KindRecommendation }
func (*Analysis) Kind() Kind          { return KindAnalysis }
func (*ImageResult) Kind() Kind       { return KindImage }
func (*VideoResult) Kind() Kind       { return KindVideo }
func (*AudioResult) Kind() Kind       { return KindSpeech }

func (*SearchResult) isResult()      {}
func (RecommendationList) isResult() {}
func (*Analysis) isResult()          {}
func (*ImageResult) isResult()       {}
func (*VideoResult) isResult()       {}
func (*AudioResult) isResult()       {}

var (
	_ Result = (*SearchResult)(nil)
	_ Result = RecommendationList(nil)
	_ Result = (*Analysis)(nil)
	_ Result = (*ImageResult)(nil)
	_ Result = (*VideoResult)(nil)
	_ Result = (*AudioResult)(nil)
)
