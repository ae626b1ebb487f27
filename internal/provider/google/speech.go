package google

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/greengold/carbonai"
	"google.golang.org/genai"
)

// SpeechVoice is the prebuilt voice used for narration.
const SpeechVoice = "Kore"

// Speak narrates text. The result is raw 16-bit PCM at 24kHz mono; nil
// without error when the response carries no audio part.
func (c *Client) Speak(ctx context.Context, text string) (*ai.Audio, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("speak: %w", ai.ErrEmptyInput)
	}

	prompt := "Speak this sustainability insight professionally: " + text
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: SpeechVoice},
			},
		},
	}

	resp, err := c.generate(ctx, c.set.Speech, genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}

	blob := firstInlineData(resp)
	if blob == nil {
		return nil, nil
	}
	return &ai.Audio{MIMEType: blob.MIMEType, Data: blob.Data}, nil
}
