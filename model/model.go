package model

import ai "github.com/greengold/carbonai"

// Gemini model identifiers.
const (
	Gemini3FlashPreview = "gemini-3-flash-preview"
	Gemini3ProPreview   = "gemini-3-pro-preview"
	Gemini25Flash       = "gemini-2.5-flash"

	Gemini25FlashImage     = "gemini-2.5-flash-image"
	Gemini3ProImagePreview = "gemini-3-pro-image-preview"

	Veo31FastGeneratePreview = "veo-3.1-fast-generate-preview"

	Gemini25FlashPreviewTTS = "gemini-2.5-flash-preview-tts"
)

// Set assigns a model to each operation.
type Set struct {
	Search          string `yaml:"search"`
	Maps            string `yaml:"maps"`
	Recommendations string `yaml:"recommendations"`
	Analysis        string `yaml:"analysis"`
	Image           string `yaml:"image"`     // 1K tier
	ImagePro        string `yaml:"image_pro"` // 2K and 4K tiers
	Video           string `yaml:"video"`
	Speech          string `yaml:"speech"`
}

// Defaults returns the models the gateway uses unless configured otherwise.
func Defaults() Set {
	return Set{
		Search:          Gemini3FlashPreview,
		Maps:            Gemini25Flash,
		Recommendations: Gemini3FlashPreview,
		Analysis:        Gemini3ProPreview,
		Image:           Gemini25FlashImage,
		ImagePro:        Gemini3ProImagePreview,
		Video:           Veo31FastGeneratePreview,
		Speech:          Gemini25FlashPreviewTTS,
	}
}

// Merge returns s with every non-empty entry of o applied on top.
func (s Set) Merge(o Set) Set {
	pick := func(cur, override string) string {
		if override != "" {
			return override
		}
		return cur
	}
	return Set{
		Search:          pick(s.Search, o.Search),
		Maps:            pick(s.Maps, o.Maps),
		Recommendations: pick(s.Recommendations, o.Recommendations),
		Analysis:        pick(s.Analysis, o.Analysis),
		Image:           pick(s.Image, o.Image),
		ImagePro:        pick(s.ImagePro, o.ImagePro),
		Video:           pick(s.Video, o.Video),
		Speech:          pick(s.Speech, o.Speech),
	}
}

// ImageFor returns the image model for a size tier.
func (s Set) ImageFor(size ai.ImageSize) string {
	if size == ai.ImageSize1K || size == "" {
		return s.Image
	}
	return s.ImagePro
}
