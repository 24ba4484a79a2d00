// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM formats, interleaved buffers and sample conversions
package audio

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// DefaultSampleRate is the rate used for sounds built from a frame count.
	DefaultSampleRate = 22050

	// BitDepth is the only sample width held in memory.
	BitDepth = 16

	// BytesPerSample is the size of one channel sample.
	BytesPerSample = BitDepth / 8

	// MaxChannels is the widest layout a sound can hold (stereo).
	MaxChannels = 2
)

// Format describes a 16-bit PCM layout
type Format struct {
	SampleRate int
	Channels   int
}

// FrameSize returns the number of bytes in one frame
func (f Format) FrameSize() int {
	return f.Channels * BytesPerSample
}

// IsStereo reports whether the format carries two channels
func (f Format) IsStereo() bool {
	return f.Channels == 2
}

// Duration returns the playing time of the given number of frames
func (f Format) Duration(frames int) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

// Validate checks the format can be held by a sound buffer
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", f.SampleRate)
	}
	if f.Channels < 1 || f.Channels > MaxChannels {
		return fmt.Errorf("unsupported channel count: %d (supported: 1, 2)", f.Channels)
	}
	return nil
}

// Buffer holds decoded PCM audio as interleaved 16-bit samples
type Buffer struct {
	Format  Format
	Samples []int16
}

// NumFrames returns the number of whole frames in the buffer
func (b Buffer) NumFrames() int {
	if b.Format.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Format.Channels
}

// SampleFromBytes decodes one little-endian 16-bit sample
func SampleFromBytes(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b))
}

// PutSample encodes one 16-bit sample little-endian into b
func PutSample(b []byte, sample int16) {
	binary.LittleEndian.PutUint16(b, uint16(sample))
}

// BytesToSamples decodes a little-endian byte buffer into samples.
// A trailing odd byte is ignored.
func BytesToSamples(data []byte) []int16 {
	samples := make([]int16, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = SampleFromBytes(data[i*BytesPerSample:])
	}
	return samples
}

// SamplesToBytes encodes samples into a little-endian byte buffer
func SamplesToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		PutSample(data[i*BytesPerSample:], s)
	}
	return data
}

// ScaleToInt16 converts a signed sample of the given bit depth to 16-bit.
// 8-bit samples are expected unsigned, as WAV stores them.
func ScaleToInt16(sample int32, bitDepth int) int16 {
	switch {
	case bitDepth == 8:
		return int16((sample - 128) << 8)
	case bitDepth == 16:
		return int16(sample)
	case bitDepth > 16:
		return int16(sample >> (bitDepth - 16))
	default:
		return int16(sample << (16 - bitDepth))
	}
}
