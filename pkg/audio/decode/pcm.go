// ABOUTME: PCM audio decoder
// ABOUTME: Decodes headerless 16-bit little-endian PCM
package decode

import (
	"fmt"
	"io"

	"github.com/jes4go/jes4go/pkg/audio"
)

// PCMDecoder decodes headerless little-endian PCM
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder for the given layout.
// Only audio.BitDepth samples are supported.
func NewPCM(format audio.Format, bitDepth int) (Decoder, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	if bitDepth != audio.BitDepth {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: %d)", bitDepth, audio.BitDepth)
	}

	return &PCMDecoder{format: format}, nil
}

// Decode converts PCM bytes to 16-bit samples.
// Bytes past the last whole frame are dropped.
func (d *PCMDecoder) Decode(r io.Reader) (audio.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to read pcm data: %w", err)
	}

	frameBytes := d.format.FrameSize()
	usable := (len(data) / frameBytes) * frameBytes

	return audio.Buffer{
		Format:  d.format,
		Samples: audio.BytesToSamples(data[:usable]),
	}, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}
