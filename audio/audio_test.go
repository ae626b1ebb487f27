package audio

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := [][]byte{
		{},
		{0x00},
		{0xff, 0xfe},
		[]byte("sustainability"),
	}
	for n := 0; n < 20; n++ {
		b := make([]byte, rng.Intn(300))
		rng.Read(b)
		inputs = append(inputs, b)
	}

	for _, in := range inputs {
		out, err := DecodeBase64(EncodeBase64(in))
		require.NoError(t, err)
		assert.Equal(t, len(in), len(out))
		assert.Equal(t, string(in), string(out))
	}
}

func TestEncodeBase64(t *testing.T) {
	t.Run("keeps padding", func(t *testing.T) {
		assert.Equal(t, "YQ==", EncodeBase64([]byte("a")))
	})

	t.Run("never wraps lines", func(t *testing.T) {
		assert.NotContains(t, EncodeBase64(make([]byte, 1024)), "\n")
	})
}

func TestDecodeBase64Invalid(t *testing.T) {
	_, err := DecodeBase64("not base64!")
	assert.Error(t, err)
}

func pcm(samples ...int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	return b
}

func TestDecodePCM(t *testing.T) {
	t.Run("mono defaults", func(t *testing.T) {
		buf, err := DecodePCM(pcm(0, 16384, -32768, 32767))
		require.NoError(t, err)

		assert.Equal(t, DefaultSampleRate, buf.SampleRate)
		require.Equal(t, 1, buf.NumChannels())
		assert.Equal(t, []float32{0, 0.5, -1, float32(32767) / 32768}, buf.Channels[0])
	})

	t.Run("deinterleaves stereo", func(t *testing.T) {
		buf, err := DecodePCM(pcm(1000, -1000, 2000, -2000, 3000, -3000), WithChannels(2))
		require.NoError(t, err)

		require.Equal(t, 2, buf.NumChannels())
		assert.Equal(t, 3, buf.Frames())
		assert.InDelta(t, 1000.0/32768, buf.Channels[0][0], 1e-9)
		assert.InDelta(t, -1000.0/32768, buf.Channels[1][0], 1e-9)
		assert.InDelta(t, 3000.0/32768, buf.Channels[0][2], 1e-9)
		assert.InDelta(t, -3000.0/32768, buf.Channels[1][2], 1e-9)
	})

	t.Run("shape and range for N samples across C channels", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for _, channels := range []int{1, 2, 3, 6} {
			for _, n := range []int{0, 1, 5, 12, 97} {
				samples := make([]int16, n)
				for i := range samples {
					samples[i] = int16(rng.Intn(65536) - 32768)
				}

				buf, err := DecodePCM(pcm(samples...), WithChannels(channels))
				require.NoError(t, err)
				require.Equal(t, channels, buf.NumChannels())
				for _, ch := range buf.Channels {
					assert.Len(t, ch, n/channels)
					for _, v := range ch {
						assert.GreaterOrEqual(t, v, float32(-1))
						assert.LessOrEqual(t, v, float32(1))
					}
				}
			}
		}
	})

	t.Run("drops trailing partial frame", func(t *testing.T) {
		data := append(pcm(100, 200, 300), 0x7f) // odd byte count
		buf, err := DecodePCM(data, WithChannels(2))
		require.NoError(t, err)
		assert.Equal(t, 1, buf.Frames())
	})

	t.Run("custom sample rate and duration", func(t *testing.T) {
		buf, err := DecodePCM(make([]byte, 2*48000), WithSampleRate(48000))
		require.NoError(t, err)
		assert.Equal(t, 48000, buf.SampleRate)
		assert.InDelta(t, 1.0, buf.Duration(), 1e-9)
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := DecodePCM(pcm(1), WithChannels(0))
		assert.ErrorIs(t, err, ErrInvalidFormat)

		_, err = DecodePCM(pcm(1), WithSampleRate(-1))
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestBufferEmpty(t *testing.T) {
	var b Buffer
	assert.Zero(t, b.Frames())
	assert.Zero(t, b.Duration())
}

func TestEncodeWAV(t *testing.T) {
	data := pcm(1, 2, 3, 4)
	wav, err := EncodeWAV(data, WithChannels(2), WithSampleRate(16000))
	require.NoError(t, err)

	require.Len(t, wav, 44+len(data))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+len(data)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[22:24]))
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(16000*4), binary.LittleEndian.Uint32(wav[28:32]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(wav[32:34]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, data, wav[44:])

	_, err = EncodeWAV(data, WithChannels(-1))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
