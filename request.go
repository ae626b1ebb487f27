package carbonai

// Kind identifies a request shape and the result shape it produces.
type Kind string

const (
	KindSearch         Kind = "search"
	KindMaps           Kind = "maps"
	KindRecommendation Kind = "recommendation"
	KindAnalysis       Kind = "analysis"
	KindImage          Kind = "image"
	KindVideo          Kind = "video"
	KindSpeech         Kind = "speech"
)

// Request is one of the query types below. The set is closed.
type Request interface {
	Kind() Kind
	isRequest()
}

// SearchQuery asks for web-grounded information about a company.
type SearchQuery struct {
	Query string
}

// MapsQuery asks for maps-grounded sustainability hubs near a location.
type MapsQuery struct {
	Location string
}

// RecommendationQuery asks for structured carbon reduction recommendations.
type RecommendationQuery struct {
	// Data is serialized into the prompt. An "industry" string entry names
	// the sector the recommendations target.
	Data map[string]any
}

// AnalysisQuery asks for a long-form decarbonization roadmap.
type AnalysisQuery struct {
	Data map[string]any
}

// ImageQuery asks for a generated image.
type ImageQuery struct {
	Prompt  string
	Options []ImageOption
}

// VideoQuery asks for a generated video.
type VideoQuery struct {
	Prompt  string
	Options []VideoOption
}

// SpeechQuery asks for text read aloud.
type SpeechQuery struct {
	Text string
}

func (SearchQuery) Kind() Kind         { return KindSearch }
func (MapsQuery) Kind() Kind           { return KindMaps }
func (RecommendationQuery) Kind() Kind { return KindRecommendation }
func (AnalysisQuery) Kind() Kind       { return KindAnalysis }
func (ImageQuery) Kind() Kind          { return KindImage }
func (VideoQuery) Kind() Kind          { return KindVideo }
func (SpeechQuery) Kind() Kind         { return KindSpeech }

func (SearchQuery) isRequest()         {}
func (MapsQuery) isRequest()           {}
func (RecommendationQuery) isRequest() {}
func (AnalysisQuery) isRequest()       {}
func (ImageQuery) isRequest()          {}
func (VideoQuery) isRequest()          {}
func (SpeechQuery) isRequest()         {}

var (
	_ Request = SearchQuery{}
	_ Request = MapsQuery{}
	_ Request = RecommendationQuery{}
	_ Request = AnalysisQuery{}
	_ Request = ImageQuery{}
	_ Request = VideoQuery{}
	_ Request = SpeechQuery{}
)
