package google

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/internal/poll"
	"google.golang.org/genai"
)

// Fixed video output settings.
const (
	VideoResolution  = "720p"
	VideoAspectRatio = "16:9"
	VideoImageMIME   = "image/png"
)

// GenerateVideo submits a video generation job and polls it until it
// finishes. The returned URL has the client's API key attached as the key
// query parameter so it can be downloaded directly.
func (c *Client) GenerateVideo(ctx context.Context, prompt string, opts ...ai.VideoOption) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("generate video: %w", ai.ErrEmptyInput)
	}
	options := ai.ApplyVideoOptions(opts...)

	var image *genai.Image
	if options.StartImage != "" {
		img, err := decodeStartImage(options.StartImage)
		if err != nil {
			return "", ai.NewError(ai.KindInvalidInput, "invalid start image", 0, err)
		}
		image = img
	}

	config := &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     VideoResolution,
		AspectRatio:    VideoAspectRatio,
	}

	op, err := c.models.GenerateVideos(ctx, c.set.Video, prompt, image, config)
	if err != nil {
		return "", wrapError(err, c.apiKey)
	}
	if op == nil {
		return "", ai.NewError(ai.KindMalformedResponse, "video submission returned no operation", 0, nil)
	}

	if !op.Done {
		op, err = poll.Until(ctx, c.poll, c.pollEvents, func(ctx context.Context) (*genai.GenerateVideosOperation, bool, error) {
			next, err := c.operations.GetVideosOperation(ctx, op, nil)
			if err != nil {
				return nil, false, wrapError(err, c.apiKey)
			}
			if next == nil {
				return nil, false, ai.NewError(ai.KindMalformedResponse, "video poll returned no operation", 0, nil)
			}
			op = next
			return next, next.Done, nil
		})
		if errors.Is(err, poll.ErrExhausted) {
			return "", ai.NewError(ai.KindTimeout, fmt.Sprintf("video generation not finished after %d polls", c.poll.MaxAttempts), 0, err)
		}
		if err != nil {
			return "", err
		}
	}

	if len(op.Error) > 0 {
		return "", operationError(op.Error)
	}

	uri := videoURI(op)
	if uri == "" {
		return "", ai.NewError(ai.KindMalformedResponse, "video operation finished without a download URI", 0, nil)
	}
	return withKey(uri, c.apiKey)
}

func videoURI(op *genai.GenerateVideosOperation) string {
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return ""
	}
	v := op.Response.GeneratedVideos[0]
	if v == nil || v.Video == nil {
		return ""
	}
	return v.Video.URI
}

// withKey appends the key query parameter to a download URI. The query the
// backend returned is kept byte for byte.
func withKey(uri, apiKey string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", ai.NewError(ai.KindMalformedResponse, "video download URI is not a URL", 0, err)
	}
	param := "key=" + url.QueryEscape(apiKey)
	if u.RawQuery == "" {
		u.RawQuery = param
	} else {
		u.RawQuery += "&" + param
	}
	return u.String(), nil
}

// decodeStartImage accepts plain base64 or a data URI.
func decodeStartImage(s string) (*genai.Image, error) {
	if i := strings.Index(s, ";base64,"); strings.HasPrefix(s, "data:") && i >= 0 {
		s = s[i+len(";base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &ai.ImageError{Op: "decode", Src: "start image", Err: err}
	}
	return &genai.Image{ImageBytes: data, MIMEType: VideoImageMIME}, nil
}
