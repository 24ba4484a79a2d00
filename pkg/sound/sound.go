// ABOUTME: Sound buffer type and its accessors
// ABOUTME: Frame and sample addressing over a 16-bit PCM byte buffer
package sound

import (
	"fmt"
	"time"

	"github.com/jes4go/jes4go/pkg/audio"
)

// DefaultSeconds is the length of a sound created without a frame count
const DefaultSeconds = 3

// Sound is a mutable 16-bit PCM buffer with its sampling rate, channel
// layout and the file it came from. It is not safe for concurrent use.
type Sound struct {
	buffer   []byte
	format   audio.Format
	fileName string
}

type config struct {
	sampleRate int
	channels   int
}

// Option configures a Sound built by New
type Option func(*config)

// WithSamplingRate sets the sampling rate. Non-positive rates are ignored.
func WithSamplingRate(rate int) Option {
	return func(c *config) {
		if rate > 0 {
			c.sampleRate = rate
		}
	}
}

// WithStereo selects two channels instead of one
func WithStereo(stereo bool) Option {
	return func(c *config) {
		if stereo {
			c.channels = 2
		} else {
			c.channels = 1
		}
	}
}

// New creates a silent sound of numFrames frames at the default rate
func New(numFrames int, opts ...Option) (*Sound, error) {
	if numFrames < 0 {
		return nil, &Error{
			Op:     OpNew,
			Kind:   ErrInvalidBuffer,
			Detail: fmt.Sprintf("negative frame count %d", numFrames),
		}
	}

	cfg := config{sampleRate: audio.DefaultSampleRate, channels: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	format := audio.Format{SampleRate: cfg.sampleRate, Channels: cfg.channels}
	return &Sound{
		buffer: make([]byte, numFrames*format.FrameSize()),
		format: format,
	}, nil
}

// NewEmpty creates a silent mono sound of DefaultSeconds at the default rate
func NewEmpty() *Sound {
	format := audio.Format{SampleRate: audio.DefaultSampleRate, Channels: 1}
	return &Sound{
		buffer: make([]byte, DefaultSeconds*format.SampleRate*format.FrameSize()),
		format: format,
	}
}

// Copy returns a deep copy of src
func Copy(src *Sound) *Sound {
	return src.Clone()
}

// Clone returns a deep copy with independent buffer storage
func (s *Sound) Clone() *Sound {
	buf := make([]byte, len(s.buffer))
	copy(buf, s.buffer)
	return &Sound{
		buffer:   buf,
		format:   s.format,
		fileName: s.fileName,
	}
}

// FromBuffer builds a sound from decoded samples.
// Partial trailing frames are dropped.
func FromBuffer(buf audio.Buffer) (*Sound, error) {
	if err := buf.Format.Validate(); err != nil {
		return nil, &Error{Op: OpNew, Kind: ErrInvalidBuffer, Err: err}
	}

	samples := buf.Samples[:buf.NumFrames()*buf.Format.Channels]
	return &Sound{
		buffer: audio.SamplesToBytes(samples),
		format: buf.Format,
	}, nil
}

// LengthInFrames returns the number of frames
func (s *Sound) LengthInFrames() int {
	return len(s.buffer) / s.format.FrameSize()
}

// Length returns the number of frames
func (s *Sound) Length() int {
	return s.LengthInFrames()
}

// NumSamples returns the number of frames.
// Samples and frames are the same count in this API.
func (s *Sound) NumSamples() int {
	return s.LengthInFrames()
}

// SamplingRate returns frames per second
func (s *Sound) SamplingRate() int {
	return s.format.SampleRate
}

// IsStereo reports whether the sound has two channels
func (s *Sound) IsStereo() bool {
	return s.format.IsStereo()
}

// Channels returns the channel count
func (s *Sound) Channels() int {
	return s.format.Channels
}

// FrameSize returns the number of bytes per frame
func (s *Sound) FrameSize() int {
	return s.format.FrameSize()
}

// Format returns the PCM layout
func (s *Sound) Format() audio.Format {
	return s.format
}

// Duration returns the playing time
func (s *Sound) Duration() time.Duration {
	return s.format.Duration(s.LengthInFrames())
}

// Buffer returns a copy of the raw PCM bytes
func (s *Sound) Buffer() []byte {
	buf := make([]byte, len(s.buffer))
	copy(buf, s.buffer)
	return buf
}

// AsArray returns a copy of the raw PCM bytes
func (s *Sound) AsArray() []byte {
	return s.Buffer()
}

// SetBuffer replaces the PCM bytes. The frame count follows the new length.
func (s *Sound) SetBuffer(buf []byte) error {
	if len(buf)%s.FrameSize() != 0 {
		return &Error{
			Op:     OpSetBuffer,
			Kind:   ErrInvalidBuffer,
			Detail: fmt.Sprintf("got %d bytes, want a multiple of %d", len(buf), s.FrameSize()),
		}
	}

	s.buffer = make([]byte, len(buf))
	copy(s.buffer, buf)
	return nil
}

// Frame returns a copy of the bytes of frame i
func (s *Sound) Frame(i int) ([]byte, error) {
	if err := s.checkFrame(OpGetFrame, i); err != nil {
		return nil, err
	}

	size := s.FrameSize()
	frame := make([]byte, size)
	copy(frame, s.buffer[i*size:(i+1)*size])
	return frame, nil
}

// SetFrame replaces the bytes of frame i
func (s *Sound) SetFrame(i int, frame []byte) error {
	if err := s.checkFrame(OpSetFrame, i); err != nil {
		return err
	}

	size := s.FrameSize()
	if len(frame) != size {
		return &Error{
			Op:     OpSetFrame,
			Kind:   ErrInvalidFrame,
			Detail: fmt.Sprintf("got %d bytes, want %d", len(frame), size),
		}
	}

	copy(s.buffer[i*size:(i+1)*size], frame)
	return nil
}

// SampleValueAt returns the mono or left-channel sample of frame i
func (s *Sound) SampleValueAt(i int) (int16, error) {
	return s.ChannelSampleAt(i, 0)
}

// SetSampleValueAt writes the mono or left-channel sample of frame i
func (s *Sound) SetSampleValueAt(i int, value int16) error {
	return s.SetChannelSampleAt(i, 0, value)
}

// ChannelSampleAt returns the sample of channel ch in frame i
func (s *Sound) ChannelSampleAt(i, ch int) (int16, error) {
	off, err := s.sampleOffset(OpGetSample, i, ch)
	if err != nil {
		return 0, err
	}
	return audio.SampleFromBytes(s.buffer[off:]), nil
}

// SetChannelSampleAt writes the sample of channel ch in frame i
func (s *Sound) SetChannelSampleAt(i, ch int, value int16) error {
	off, err := s.sampleOffset(OpSetSample, i, ch)
	if err != nil {
		return err
	}
	audio.PutSample(s.buffer[off:], value)
	return nil
}

// Samples returns the interleaved samples as a decoded buffer
func (s *Sound) Samples() audio.Buffer {
	return audio.Buffer{
		Format:  s.format,
		Samples: audio.BytesToSamples(s.buffer),
	}
}

// FileName returns the file the sound is associated with
func (s *Sound) FileName() string {
	return s.fileName
}

// SetFileName associates the sound with a file name
func (s *Sound) SetFileName(name string) {
	s.fileName = name
}

// String renders the JES description of the sound
func (s *Sound) String() string {
	return fmt.Sprintf("Sound file: %s number of samples: %d", s.fileName, s.LengthInFrames())
}

func (s *Sound) checkFrame(op Operation, i int) error {
	if n := s.LengthInFrames(); i < 0 || i >= n {
		return newIndexError(op, i, n)
	}
	return nil
}

func (s *Sound) sampleOffset(op Operation, i, ch int) (int, error) {
	if err := s.checkFrame(op, i); err != nil {
		return 0, err
	}
	if ch < 0 || ch >= s.format.Channels {
		return 0, &Error{
			Op:     op,
			Kind:   ErrIndexOutOfRange,
			Detail: fmt.Sprintf("channel %d not in [0, %d)", ch, s.format.Channels),
		}
	}
	return i*s.FrameSize() + ch*audio.BytesPerSample, nil
}
