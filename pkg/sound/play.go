// ABOUTME: Playback of sounds through an audio output
// ABOUTME: Fire-and-forget and blocking variants
package sound

import (
	"context"
	"errors"

	"github.com/jes4go/jes4go/pkg/audio/output"
)

// Play hands a copy of the samples to out and returns without waiting.
// Later edits to the sound do not affect what is heard.
func (s *Sound) Play(out output.Output) error {
	_, err := s.start(out)
	return err
}

// BlockingPlay plays the sound and waits until out reports completion
// or ctx is done.
func (s *Sound) BlockingPlay(ctx context.Context, out output.Output) error {
	done, err := s.start(out)
	if err != nil {
		return err
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return &Error{Op: OpPlay, Path: s.fileName, Kind: ErrIO, Err: ctx.Err()}
	}
}

func (s *Sound) start(out output.Output) (<-chan struct{}, error) {
	if out == nil {
		return nil, &Error{Op: OpPlay, Path: s.fileName, Kind: ErrIO, Err: errors.New("no audio output")}
	}

	done, err := out.Play(s.Samples())
	if err != nil {
		return nil, &Error{Op: OpPlay, Path: s.fileName, Kind: ErrIO, Err: err}
	}
	return done, nil
}
