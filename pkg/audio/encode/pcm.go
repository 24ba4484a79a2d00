// ABOUTME: PCM audio encoder
// ABOUTME: Encodes int16 samples to 16-bit little-endian PCM bytes
package encode

import (
	"fmt"

	"github.com/jes4go/jes4go/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct{}

// NewPCM creates a new PCM encoder. Only audio.BitDepth is supported.
func NewPCM(bitDepth int) (Encoder, error) {
	if bitDepth != audio.BitDepth {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: %d)", bitDepth, audio.BitDepth)
	}
	return &PCMEncoder{}, nil
}

// Encode converts int16 samples to little-endian PCM bytes
func (e *PCMEncoder) Encode(samples []int16) ([]byte, error) {
	return audio.SamplesToBytes(samples), nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
