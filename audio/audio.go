// Package audio decodes the raw speech payloads returned by text-to-speech
// models: base64 transport encoding and 16-bit little-endian PCM.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

// Defaults for speech output.
const (
	DefaultSampleRate = 24000
	DefaultChannels   = 1
)

// ErrInvalidFormat is returned when the requested sample rate or channel
// count cannot describe a PCM stream.
var ErrInvalidFormat = errors.New("audio: invalid format")

// DecodeBase64 decodes standard, padded base64.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// EncodeBase64 encodes bytes as standard, padded base64 without line breaks.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Buffer is deinterleaved PCM audio with samples normalized to [-1, 1].
type Buffer struct {
	SampleRate int
	// Channels holds one sample slice per channel, all of equal length.
	Channels [][]float32
}

// NumChannels returns the number of channels.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Frames returns the number of samples per channel.
func (b *Buffer) Frames() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the playback length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Format describes a PCM stream.
type Format struct {
	SampleRate int
	Channels   int
}

// Option configures a Format.
type Option func(*Format)

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(rate int) Option {
	return func(f *Format) {
		f.SampleRate = rate
	}
}

// WithChannels sets the number of interleaved channels.
func WithChannels(n int) Option {
	return func(f *Format) {
		f.Channels = n
	}
}

func applyOptions(opts []Option) Format {
	f := Format{SampleRate: DefaultSampleRate, Channels: DefaultChannels}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// DecodePCM interprets data as interleaved signed 16-bit little-endian
// samples and splits it into per-channel slices, dividing each sample by
// 32768. A trailing partial frame (fewer than 2*channels bytes) is dropped.
func DecodePCM(data []byte, opts ...Option) (*Buffer, error) {
	f := applyOptions(opts)
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d, channels %d", ErrInvalidFormat, f.SampleRate, f.Channels)
	}

	frameSize := 2 * f.Channels
	frames := len(data) / frameSize

	buf := &Buffer{
		SampleRate: f.SampleRate,
		Channels:   make([][]float32, f.Channels),
	}
	for ch := range buf.Channels {
		buf.Channels[ch] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		frame := data[i*frameSize : (i+1)*frameSize]
		for ch := 0; ch < f.Channels; ch++ {
			sample := int16(binary.LittleEndian.Uint16(frame[2*ch:]))
			buf.Channels[ch][i] = float32(sample) / 32768.0
		}
	}
	return buf, nil
}
