// ABOUTME: Oto-based audio output implementation
// ABOUTME: Handles PCM playback with software volume control using oto library
package output

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/jes4go/jes4go/pkg/audio"
	"github.com/jes4go/jes4go/pkg/audio/encode"
	"github.com/jes4go/jes4go/pkg/audio/resample"
)

// pollInterval is how often a finished player is checked for
const pollInterval = 10 * time.Millisecond

// Oto output implementation using oto library
type Oto struct {
	mu      sync.Mutex
	otoCtx  *oto.Context
	format  audio.Format
	encoder encode.Encoder
	volume  int
	ready   bool
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{
		volume: 100,
	}
}

// open initializes the output device.
// oto allows one context per process, so only the first call takes effect.
func (o *Oto) open(format audio.Format) error {
	if o.otoCtx != nil {
		if o.format != format {
			log.Printf("Device open at %dHz %dch, converting %dHz %dch audio",
				o.format.SampleRate, o.format.Channels, format.SampleRate, format.Channels)
		}
		return nil
	}

	if err := format.Validate(); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	encoder, err := encode.NewPCM(audio.BitDepth)
	if err != nil {
		return err
	}

	o.otoCtx = ctx
	o.format = format
	o.encoder = encoder
	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels", format.SampleRate, format.Channels)

	return nil
}

// Play converts buf to the device format and starts a player for it
func (o *Oto) Play(buf audio.Buffer) (<-chan struct{}, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.open(buf.Format); err != nil {
		return nil, err
	}

	converted := conform(buf, o.format)
	samples := applyVolume(converted.Samples, o.volume)

	data, err := o.encoder.Encode(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode samples: %w", err)
	}

	player := o.otoCtx.NewPlayer(bytes.NewReader(data))
	player.Play()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for player.IsPlaying() {
			time.Sleep(pollInterval)
		}
		if err := player.Close(); err != nil {
			log.Printf("Warning: player close error: %v", err)
		}
	}()

	return done, nil
}

// Close releases output resources
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.otoCtx != nil && o.ready {
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend oto context: %w", err)
		}
		o.ready = false
	}
	return nil
}

// SetVolume sets the volume (0-100) applied to sounds played afterwards
func (o *Oto) SetVolume(volume int) {
	volume = max(0, min(100, volume))

	o.mu.Lock()
	o.volume = volume
	o.mu.Unlock()

	log.Printf("Volume set to %d", volume)
}

// conform resamples and remixes buf to match the device format
func conform(buf audio.Buffer, device audio.Format) audio.Buffer {
	buf = remix(buf, device.Channels)
	return resample.Convert(buf, device.SampleRate)
}

// remix maps mono to stereo by duplication and stereo to mono by averaging
func remix(buf audio.Buffer, channels int) audio.Buffer {
	if buf.Format.Channels == channels {
		return buf
	}

	frames := buf.NumFrames()
	out := make([]int16, frames*channels)

	switch {
	case buf.Format.Channels == 1 && channels == 2:
		for i := 0; i < frames; i++ {
			out[i*2] = buf.Samples[i]
			out[i*2+1] = buf.Samples[i]
		}
	case buf.Format.Channels == 2 && channels == 1:
		for i := 0; i < frames; i++ {
			out[i] = int16((int32(buf.Samples[i*2]) + int32(buf.Samples[i*2+1])) / 2)
		}
	default:
		return buf
	}

	return audio.Buffer{
		Format:  audio.Format{SampleRate: buf.Format.SampleRate, Channels: channels},
		Samples: out,
	}
}

// applyVolume scales samples by volume percent with clipping protection
func applyVolume(samples []int16, volume int) []int16 {
	multiplier := float64(volume) / 100.0

	result := make([]int16, len(samples))
	for i, sample := range samples {
		scaled := int32(float64(sample) * multiplier)

		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}

		result[i] = int16(scaled)
	}

	return result
}
