// ABOUTME: Tests for audio resampler
// ABOUTME: Tests linear interpolation resampling between sample rates
package resample

import (
	"testing"

	"github.com/jes4go/jes4go/pkg/audio"
)

func TestNew(t *testing.T) {
	r := New(22050, 48000, 2)

	if r.inputRate != 22050 {
		t.Errorf("expected inputRate 22050, got %d", r.inputRate)
	}

	if r.outputRate != 48000 {
		t.Errorf("expected outputRate 48000, got %d", r.outputRate)
	}

	if r.channels != 2 {
		t.Errorf("expected channels 2, got %d", r.channels)
	}
}

func TestResampleUpsampling(t *testing.T) {
	r := New(22050, 44100, 1)

	input := make([]int16, 100)
	for i := range input {
		input[i] = int16(i * 100) // Ramp signal
	}

	output := make([]int16, r.OutputSamplesNeeded(len(input)))
	n := r.Resample(input, output)

	// Doubling the rate stops one input frame early
	if n != 198 {
		t.Fatalf("expected 198 samples, got %d", n)
	}

	// Midpoints are interpolated
	if output[1] != 50 {
		t.Errorf("expected interpolated value 50, got %d", output[1])
	}
	if output[2] != 100 {
		t.Errorf("expected original value 100, got %d", output[2])
	}
}

func TestResampleDownsampling(t *testing.T) {
	r := New(48000, 24000, 2)

	input := make([]int16, 200) // 100 stereo frames
	for i := range input {
		input[i] = int16(i)
	}

	output := make([]int16, r.OutputSamplesNeeded(len(input)))
	n := r.Resample(input, output)

	if n != 100 {
		t.Fatalf("expected 100 samples, got %d", n)
	}

	// Frame 1 of the output is frame 2 of the input
	if output[2] != 4 || output[3] != 5 {
		t.Errorf("expected [4 5], got [%d %d]", output[2], output[3])
	}
}

func TestResampleEmptyInput(t *testing.T) {
	r := New(44100, 48000, 2)
	if n := r.Resample(nil, make([]int16, 10)); n != 0 {
		t.Errorf("expected 0 samples, got %d", n)
	}
}

func TestReset(t *testing.T) {
	r := New(44100, 48000, 1)
	r.position = 0.7
	r.Reset()
	if r.position != 0 {
		t.Errorf("expected position 0 after reset, got %f", r.position)
	}
}

func TestConvert(t *testing.T) {
	buf := audio.Buffer{
		Format:  audio.Format{SampleRate: 11025, Channels: 1},
		Samples: []int16{0, 100, 200, 300, 400},
	}

	out := Convert(buf, 22050)
	if out.Format.SampleRate != 22050 {
		t.Errorf("expected rate 22050, got %d", out.Format.SampleRate)
	}
	if len(out.Samples) != 8 {
		t.Errorf("expected 8 samples, got %d", len(out.Samples))
	}

	same := Convert(buf, 11025)
	if len(same.Samples) != len(buf.Samples) {
		t.Error("expected buffer at target rate to be returned unchanged")
	}
}
