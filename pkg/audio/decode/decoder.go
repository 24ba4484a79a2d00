// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all audio decoders and extension lookup
package decode

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jes4go/jes4go/pkg/audio"
)

// ErrUnsupported is returned for file types no decoder handles
var ErrUnsupported = errors.New("unsupported audio format")

// Decoder decodes a complete encoded stream to 16-bit PCM
type Decoder interface {
	// Decode reads r to the end and returns the decoded samples
	Decode(r io.Reader) (audio.Buffer, error)

	// Close releases decoder resources
	Close() error
}

// RawFormat is the layout assumed for headerless .raw and .pcm files
var RawFormat = audio.Format{SampleRate: audio.DefaultSampleRate, Channels: 1}

// ForFile picks a decoder from the file extension
func ForFile(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".mp3":
		return NewMP3(), nil
	case ".flac":
		return NewFLAC(), nil
	case ".raw", ".pcm":
		return NewPCM(RawFormat, audio.BitDepth)
	default:
		return nil, fmt.Errorf("%w: %q (supported: .mp3, .flac, .raw, .pcm)", ErrUnsupported, ext)
	}
}
