// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 streams to stereo 16-bit samples
package decode

import (
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"
	"github.com/jes4go/jes4go/pkg/audio"
)

// MP3Decoder decodes MP3 audio
type MP3Decoder struct{}

// NewMP3 creates a new MP3 decoder
func NewMP3() Decoder {
	return &MP3Decoder{}
}

// Decode converts an MP3 stream to 16-bit samples.
// go-mp3 always produces stereo output.
func (d *MP3Decoder) Decode(r io.Reader) (audio.Buffer, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	data, err := io.ReadAll(decoder)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("mp3 decode error: %w", err)
	}

	format := audio.Format{SampleRate: decoder.SampleRate(), Channels: 2}
	whole := len(data) - len(data)%format.FrameSize()

	return audio.Buffer{
		Format:  format,
		Samples: audio.BytesToSamples(data[:whole]),
	}, nil
}

// Close releases decoder resources
func (d *MP3Decoder) Close() error {
	return nil
}
