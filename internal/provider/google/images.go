package google

import (
	"context"
	"fmt"
	"strings"

	ai "github.com/greengold/carbonai"
	"google.golang.org/genai"
)

// GenerateImage generates a single image from a text prompt. The size tier
// selects the model. It returns nil without error when the response carries
// no image part.
func (c *Client) GenerateImage(ctx context.Context, prompt string, opts ...ai.ImageOption) (*ai.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("generate image: %w", ai.ErrEmptyInput)
	}
	options := ai.ApplyImageOptions(opts...)
	if !options.Size.Valid() {
		return nil, ai.NewError(ai.KindInvalidInput, fmt.Sprintf("unsupported image size %q", options.Size), 0, nil)
	}
	if options.AspectRatio == "" {
		options.AspectRatio = ai.DefaultAspectRatio
	}

	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{
			AspectRatio: options.AspectRatio,
			ImageSize:   string(options.Size),
		},
	}

	// Make API call
	resp, err := c.generate(ctx, c.set.ImageFor(options.Size), genai.Text(prompt), config)
	if err != nil {
		return nil, err
	}

	blob := firstInlineData(resp)
	if blob == nil {
		return nil, nil
	}
	return &ai.Image{MIMEType: blob.MIMEType, Data: blob.Data}, nil
}
