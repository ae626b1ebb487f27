package carbonai

import "encoding/base64"

// ImageSize is the resolution tier for generated images.
type ImageSize string

const (
	ImageSize1K ImageSize = "1K"
	ImageSize2K ImageSize = "2K"
	ImageSize4K ImageSize = "4K"
)

// Valid reports whether s is a known size tier.
func (s ImageSize) Valid() bool {
	switch s {
	case ImageSize1K, ImageSize2K, ImageSize4K:
		return true
	}
	return false
}

// DefaultAspectRatio is used when no aspect ratio is requested.
const DefaultAspectRatio = "1:1"

// ImageDataURIPrefix starts every image data URI the gateway returns.
const ImageDataURIPrefix = "data:image/png;base64,"

// Image is a generated image.
type Image struct {
	// MIMEType is the type reported by the backend for the inline data.
	MIMEType string
	// Data holds the raw image bytes.
	Data []byte
}

// DataURI returns the image as a data:image/png;base64 URI.
func (i *Image) DataURI() string {
	return ImageDataURIPrefix + base64.StdEncoding.EncodeToString(i.Data)
}

// Audio is synthesized speech as returned by the backend: raw 16-bit PCM.
type Audio struct {
	MIMEType string
	Data     []byte
}

// Base64 returns the audio payload base64-encoded.
func (a *Audio) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}
