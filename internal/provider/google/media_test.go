package google

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGetDeepAnalysis(t *testing.T) {
	resp := textResponse(&genai.Part{Text: "Q1: audit. Q2: retrofit."})
	m := &fakeModels{resp: resp}
	c := newTestClient(m, nil)

	a, err := c.GetDeepAnalysis(context.Background(), map[string]any{"scope1": 10})
	require.NoError(t, err)

	assert.Equal(t, model.Gemini3ProPreview, m.model)
	assert.Equal(t, `Analyze this sustainability dataset deeply: {"scope1":10}. Provide a strategic 12-month decarbonization roadmap for an enterprise in this sector.`, m.prompt())
	require.NotNil(t, m.config.ThinkingConfig)
	require.NotNil(t, m.config.ThinkingConfig.ThinkingBudget)
	assert.Equal(t, int32(32768), *m.config.ThinkingConfig.ThinkingBudget)

	assert.Equal(t, "Q1: audit. Q2: retrofit.", a.Text)
	assert.Same(t, resp, a.Raw)
}

func TestGenerateImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	imageResp := textResponse(
		&genai.Part{Text: "Here is your image"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: png}},
	)

	t.Run("defaults to 1K square on flash model", func(t *testing.T) {
		m := &fakeModels{resp: imageResp}
		c := newTestClient(m, nil)

		img, err := c.GenerateImage(context.Background(), "wind farm at dawn")
		require.NoError(t, err)
		require.NotNil(t, img)

		assert.Equal(t, model.Gemini25FlashImage, m.model)
		require.NotNil(t, m.config.ImageConfig)
		assert.Equal(t, "1:1", m.config.ImageConfig.AspectRatio)
		assert.Equal(t, "1K", m.config.ImageConfig.ImageSize)

		assert.Equal(t, png, img.Data)
		assert.True(t, strings.HasPrefix(img.DataURI(), ai.ImageDataURIPrefix))
		assert.Equal(t, ai.ImageDataURIPrefix+base64.StdEncoding.EncodeToString(png), img.DataURI())
	})

	t.Run("larger sizes use the pro model", func(t *testing.T) {
		for _, size := range []ai.ImageSize{ai.ImageSize2K, ai.ImageSize4K} {
			m := &fakeModels{resp: imageResp}
			c := newTestClient(m, nil)

			_, err := c.GenerateImage(context.Background(), "solar roof", ai.WithImageSize(size), ai.WithAspectRatio("16:9"))
			require.NoError(t, err)
			assert.Equal(t, model.Gemini3ProImagePreview, m.model)
			assert.Equal(t, string(size), m.config.ImageConfig.ImageSize)
			assert.Equal(t, "16:9", m.config.ImageConfig.AspectRatio)
		}
	})

	t.Run("no image part", func(t *testing.T) {
		m := &fakeModels{resp: textResponse(&genai.Part{Text: "I cannot draw that"})}
		c := newTestClient(m, nil)

		img, err := c.GenerateImage(context.Background(), "something")
		assert.NoError(t, err)
		assert.Nil(t, img)
	})

	t.Run("invalid size", func(t *testing.T) {
		m := &fakeModels{}
		c := newTestClient(m, nil)

		_, err := c.GenerateImage(context.Background(), "x", ai.WithImageSize("8K"))
		assert.True(t, ai.IsKind(err, ai.KindInvalidInput))
		assert.Zero(t, m.calls)
	})

	t.Run("empty prompt", func(t *testing.T) {
		c := newTestClient(&fakeModels{}, nil)
		_, err := c.GenerateImage(context.Background(), "")
		assert.ErrorIs(t, err, ai.ErrEmptyInput)
	})
}

func TestSpeak(t *testing.T) {
	t.Run("requests audio with prebuilt voice", func(t *testing.T) {
		pcm := []byte{0x01, 0x00, 0xff, 0x7f}
		m := &fakeModels{resp: textResponse(&genai.Part{InlineData: &genai.Blob{MIMEType: "audio/L16;rate=24000", Data: pcm}})}
		c := newTestClient(m, nil)

		audio, err := c.Speak(context.Background(), "Emissions fell 12%.")
		require.NoError(t, err)
		require.NotNil(t, audio)

		assert.Equal(t, model.Gemini25FlashPreviewTTS, m.model)
		assert.Equal(t, "Speak this sustainability insight professionally: Emissions fell 12%.", m.prompt())
		assert.Equal(t, []string{"AUDIO"}, m.config.ResponseModalities)
		require.NotNil(t, m.config.SpeechConfig)
		assert.Equal(t, "Kore", m.config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)

		assert.Equal(t, pcm, audio.Data)
		assert.Equal(t, base64.StdEncoding.EncodeToString(pcm), audio.Base64())
	})

	t.Run("no audio part", func(t *testing.T) {
		m := &fakeModels{resp: textResponse(&genai.Part{Text: "no audio"})}
		c := newTestClient(m, nil)

		audio, err := c.Speak(context.Background(), "hello")
		assert.NoError(t, err)
		assert.Nil(t, audio)
	})

	t.Run("empty text", func(t *testing.T) {
		c := newTestClient(&fakeModels{}, nil)
		_, err := c.Speak(context.Background(), "")
		assert.ErrorIs(t, err, ai.ErrEmptyInput)
	})
}
