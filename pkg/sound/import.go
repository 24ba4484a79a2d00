// ABOUTME: Import of compressed audio files into sounds
// ABOUTME: Picks an MP3, FLAC or raw PCM decoder from the file extension
package sound

import (
	"bytes"
	"log"

	"github.com/jes4go/jes4go/pkg/audio/decode"
)

// Import decodes an MP3, FLAC or headerless 16-bit mono PCM (.raw, .pcm)
// file into a new sound named after path
func Import(path string) (*Sound, error) {
	data, err := readMediaFile(OpImport, path)
	if err != nil {
		return nil, err
	}

	dec, err := decode.ForFile(path)
	if err != nil {
		return nil, newPathError(OpImport, path, ErrFileFormat, err)
	}
	defer dec.Close()

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, newPathError(OpImport, path, ErrFileFormat, err)
	}

	s, err := FromBuffer(buf)
	if err != nil {
		return nil, newPathError(OpImport, path, ErrFileFormat, err)
	}
	s.fileName = path

	log.Printf("Imported %s: %d Hz, %d channels, %d frames",
		path, s.SamplingRate(), s.Channels(), s.LengthInFrames())
	return s, nil
}
