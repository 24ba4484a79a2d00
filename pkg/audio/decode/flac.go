// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC streams frame by frame to 16-bit samples
package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/jes4go/jes4go/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLACDecoder decodes FLAC audio
type FLACDecoder struct{}

// NewFLAC creates a new FLAC decoder
func NewFLAC() Decoder {
	return &FLACDecoder{}
}

// Decode converts a FLAC stream to 16-bit samples.
// Only the first two channels of multichannel streams are kept.
func (d *FLACDecoder) Decode(r io.Reader) (audio.Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	bitDepth := int(info.BitsPerSample)
	channels := int(info.NChannels)
	if channels > audio.MaxChannels {
		channels = audio.MaxChannels
	}

	format := audio.Format{SampleRate: int(info.SampleRate), Channels: channels}
	if err := format.Validate(); err != nil {
		return audio.Buffer{}, fmt.Errorf("invalid FLAC stream: %w", err)
	}

	var samples []int16
	if info.NSamples > 0 {
		samples = make([]int16, 0, int(info.NSamples)*channels)
	}

	for {
		frame, err := stream.ParseNext()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return audio.Buffer{}, fmt.Errorf("flac frame decode error: %w", err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				samples = append(samples, flacSampleToInt16(frame.Subframes[ch].Samples[i], bitDepth))
			}
		}
	}

	return audio.Buffer{Format: format, Samples: samples}, nil
}

// Close releases decoder resources
func (d *FLACDecoder) Close() error {
	return nil
}

// flacSampleToInt16 scales a signed FLAC sample to 16-bit.
// Unlike WAV, 8-bit FLAC samples are signed.
func flacSampleToInt16(sample int32, bitDepth int) int16 {
	if bitDepth == 8 {
		return int16(sample << 8)
	}
	return audio.ScaleToInt16(sample, bitDepth)
}
