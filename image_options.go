package carbonai

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	Size        ImageSize
	AspectRatio string
}

// ImageOption is a functional option for configuring image generation requests.
type ImageOption func(*ImageOptions)

// WithImageSize sets the resolution tier. The tier also selects the model:
// 1K uses the fast image model, 2K and 4K the pro image model.
func WithImageSize(size ImageSize) ImageOption {
	return func(o *ImageOptions) {
		o.Size = size
	}
}

// WithAspectRatio sets the aspect ratio, e.g. "16:9".
func WithAspectRatio(ratio string) ImageOption {
	return func(o *ImageOptions) {
		o.AspectRatio = ratio
	}
}

// ApplyImageOptions applies functional options on top of the defaults
// (1K, 1:1).
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{
		Size:        ImageSize1K,
		AspectRatio: DefaultAspectRatio,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// VideoOptions contains configuration for a video generation request.
type VideoOptions struct {
	// StartImage is a base64-encoded PNG used as the first frame.
	StartImage string
}

// VideoOption is a functional option for configuring video generation requests.
type VideoOption func(*VideoOptions)

// WithStartImage seeds the video with a base64-encoded PNG, typically the
// payload of a previously generated image.
func WithStartImage(base64PNG string) VideoOption {
	return func(o *VideoOptions) {
		o.StartImage = base64PNG
	}
}

// ApplyVideoOptions applies functional options to a VideoOptions struct.
func ApplyVideoOptions(opts ...VideoOption) *VideoOptions {
	o := &VideoOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
