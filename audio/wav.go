package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// EncodeWAV wraps raw 16-bit PCM in a canonical RIFF/WAVE header so it can be
// played by ordinary audio tools. A trailing partial frame is dropped.
func EncodeWAV(pcm []byte, opts ...Option) ([]byte, error) {
	f := applyOptions(opts)
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d, channels %d", ErrInvalidFormat, f.SampleRate, f.Channels)
	}

	const bitsPerSample = 16
	blockAlign := f.Channels * bitsPerSample / 8
	dataLen := len(pcm) - len(pcm)%blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)

	buf.WriteString("RIFF")
	writeLE(&buf, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	writeLE(&buf, uint32(16)) // PCM chunk size
	writeLE(&buf, uint16(1))  // PCM format
	writeLE(&buf, uint16(f.Channels))
	writeLE(&buf, uint32(f.SampleRate))
	writeLE(&buf, uint32(f.SampleRate*blockAlign))
	writeLE(&buf, uint16(blockAlign))
	writeLE(&buf, uint16(bitsPerSample))

	buf.WriteString("data")
	writeLE(&buf, uint32(dataLen))
	buf.Write(pcm[:dataLen])

	return buf.Bytes(), nil
}

func writeLE(buf *bytes.Buffer, v any) {
	// bytes.Buffer writes never fail.
	_ = binary.Write(buf, binary.LittleEndian, v)
}
