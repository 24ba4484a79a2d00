// ABOUTME: WAV container load and save for sounds
// ABOUTME: Uses go-audio/wav with atomic temp-file writes
package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
	"github.com/jes4go/jes4go/pkg/audio"
)

const (
	// wavFormatPCM is the WAVE format tag for uncompressed integer PCM
	wavFormatPCM = 1
	// wavFormatExtensible defers the format to a sub-format GUID
	wavFormatExtensible = 0xFFFE
)

// guidTail is the part of every WAVE sub-format GUID after its format tag
var guidTail = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// fmtExtension is the tail of a WAVE_FORMAT_EXTENSIBLE fmt chunk
type fmtExtension struct {
	Size        uint16
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

// Load reads a PCM WAV file into a new sound named after path
func Load(path string) (*Sound, error) {
	data, err := readMediaFile(OpLoad, path)
	if err != nil {
		return nil, err
	}

	format, pcm, err := decodeWAV(data)
	if err != nil {
		return nil, newPathError(OpLoad, path, ErrFileFormat, err)
	}

	log.Printf("Loaded WAV: %s (%d Hz, %d channels, %d frames)",
		path, format.SampleRate, format.Channels, len(pcm)/format.FrameSize())

	return &Sound{
		buffer:   pcm,
		format:   format,
		fileName: path,
	}, nil
}

// LoadFromFile replaces the sound with the contents of path.
// On error the sound is left unmodified.
func (s *Sound) LoadFromFile(path string) error {
	loaded, err := Load(path)
	if err != nil {
		return err
	}
	*s = *loaded
	return nil
}

// Write saves the sound as a 16-bit PCM WAV file, replacing any existing file
func (s *Sound) Write(path string) error {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	tmp, err := os.OpenFile(tmpPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return newPathError(OpWrite, path, ErrIO, err)
	}

	if err := encodeWAV(tmp, s.format, s.buffer); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return newPathError(OpWrite, path, ErrIO, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return newPathError(OpWrite, path, ErrIO, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return newPathError(OpWrite, path, ErrIO, err)
	}

	log.Printf("Wrote WAV: %s (%d frames)", path, s.LengthInFrames())
	return nil
}

// readMediaFile reads a whole file, mapping every failure to ErrNotFound
func readMediaFile(op Operation, path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newPathError(op, path, ErrNotFound, err)
	}
	if info.IsDir() {
		return nil, newPathError(op, path, ErrNotFound, errors.New("is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newPathError(op, path, ErrNotFound, err)
	}
	return data, nil
}

// decodeWAV parses a PCM WAV file into 16-bit little-endian frames
func decodeWAV(data []byte) (audio.Format, []byte, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return audio.Format{}, nil, fmt.Errorf("not a valid WAV file: %w", err)
		}
		return audio.Format{}, nil, errors.New("not a valid WAV file")
	}

	switch d.WavAudioFormat {
	case wavFormatPCM:
	case wavFormatExtensible:
		sub, err := extensibleSubFormat(bytes.NewReader(data))
		if err != nil {
			return audio.Format{}, nil, err
		}
		if sub != wavFormatPCM {
			return audio.Format{}, nil, fmt.Errorf("compressed WAV (sub-format %d)", sub)
		}
	default:
		return audio.Format{}, nil, fmt.Errorf("compressed WAV (format tag %d)", d.WavAudioFormat)
	}

	format := audio.Format{SampleRate: int(d.SampleRate), Channels: int(d.NumChans)}
	if err := format.Validate(); err != nil {
		return audio.Format{}, nil, err
	}

	bitDepth := int(d.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return audio.Format{}, nil, fmt.Errorf("unsupported bit depth: %d (supported: 8, 16, 24, 32)", bitDepth)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return audio.Format{}, nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	numSamples := (len(buf.Data) / format.Channels) * format.Channels
	pcm := make([]byte, numSamples*audio.BytesPerSample)
	for i := 0; i < numSamples; i++ {
		audio.PutSample(pcm[i*audio.BytesPerSample:], audio.ScaleToInt16(int32(buf.Data[i]), bitDepth))
	}

	return format, pcm, nil
}

// extensibleSubFormat returns the format tag carried by the sub-format GUID
// of an extensible fmt chunk
func extensibleSubFormat(r io.Reader) (uint16, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return 0, fmt.Errorf("not a valid WAV file: %w", err)
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("fmt chunk not found: %w", err)
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		var base [16]byte
		var ext fmtExtension
		if ch.Size < len(base)+binary.Size(ext) {
			return 0, fmt.Errorf("extensible fmt chunk too short: %d bytes", ch.Size)
		}
		if err := ch.ReadLE(&base); err != nil {
			return 0, fmt.Errorf("failed to read fmt chunk: %w", err)
		}
		if err := ch.ReadLE(&ext); err != nil {
			return 0, fmt.Errorf("failed to read fmt extension: %w", err)
		}

		tag := binary.LittleEndian.Uint16(ext.SubFormat[:2])
		if !bytes.Equal(ext.SubFormat[2:], guidTail[:]) {
			return 0, fmt.Errorf("unknown WAV sub-format GUID %x", ext.SubFormat)
		}
		return tag, nil
	}
}

// encodeWAV writes a 16-bit PCM WAV stream
func encodeWAV(w io.WriteSeeker, format audio.Format, pcm []byte) error {
	samples := audio.BytesToSamples(pcm)
	data := make([]int, len(samples))
	for i, v := range samples {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, format.SampleRate, audio.BitDepth, format.Channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
		Data:           data,
		SourceBitDepth: audio.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}
