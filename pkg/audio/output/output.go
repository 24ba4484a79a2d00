// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends
package output

import "github.com/jes4go/jes4go/pkg/audio"

// Output represents an audio output device
type Output interface {
	// Play starts rendering buf and returns without waiting.
	// The returned channel is closed once playback has finished.
	Play(buf audio.Buffer) (<-chan struct{}, error)

	// Close releases output resources
	Close() error
}

// Discard is an Output that drops audio, for machines without a device
type Discard struct{}

// NewDiscard creates an output that finishes every buffer immediately
func NewDiscard() Output {
	return Discard{}
}

// Play completes at once
func (Discard) Play(buf audio.Buffer) (<-chan struct{}, error) {
	done := make(chan struct{})
	close(done)
	return done, nil
}

// Close releases nothing
func (Discard) Close() error {
	return nil
}
