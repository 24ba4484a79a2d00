// ABOUTME: Tests for PCM decoder
// ABOUTME: Tests 16-bit PCM decoding and layout validation
package decode

import (
	"bytes"
	"testing"

	"github.com/jes4go/jes4go/pkg/audio"
)

func TestNewPCM(t *testing.T) {
	format := audio.Format{SampleRate: 48000, Channels: 2}

	decoder, err := NewPCM(format, 16)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	if decoder == nil {
		t.Fatal("expected decoder to be created")
	}
}

func TestPCMDecode16Bit(t *testing.T) {
	decoder, err := NewPCM(audio.Format{SampleRate: 48000, Channels: 2}, 16)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	// Input: 4 bytes -> Output: 2 int16 samples (one stereo frame)
	input := []byte{0x00, 0x01, 0x02, 0x03}
	buf, err := decoder.Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(buf.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(buf.Samples))
	}

	// 0x00, 0x01 -> 0x0100 = 256
	if buf.Samples[0] != 256 {
		t.Errorf("expected first sample 256, got %d", buf.Samples[0])
	}
	// 0x02, 0x03 -> 0x0302 = 770
	if buf.Samples[1] != 770 {
		t.Errorf("expected second sample 770, got %d", buf.Samples[1])
	}

	if buf.Format.SampleRate != 48000 || buf.Format.Channels != 2 {
		t.Errorf("unexpected format %+v", buf.Format)
	}
}

func TestPCMDecode_PartialFrameDropped(t *testing.T) {
	decoder, err := NewPCM(audio.Format{SampleRate: 8000, Channels: 2}, 16)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	// One full stereo frame plus one dangling sample
	buf, err := decoder.Decode(bytes.NewReader([]byte{1, 0, 2, 0, 3, 0}))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if buf.NumFrames() != 1 {
		t.Errorf("expected 1 frame, got %d", buf.NumFrames())
	}
}

func TestNewPCM_UnsupportedBitDepth(t *testing.T) {
	decoder, err := NewPCM(audio.Format{SampleRate: 48000, Channels: 2}, 24)
	if err == nil {
		t.Fatal("expected error for unsupported bit depth, got nil")
	}

	if decoder != nil {
		t.Fatal("expected decoder to be nil for unsupported bit depth")
	}

	expectedError := "unsupported bit depth: 24 (supported: 16)"
	if err.Error() != expectedError {
		t.Errorf("expected error %q, got %q", expectedError, err.Error())
	}
}

func TestNewPCM_InvalidFormat(t *testing.T) {
	decoder, err := NewPCM(audio.Format{SampleRate: 48000, Channels: 3}, 16)
	if err == nil {
		t.Fatal("expected error for three channels, got nil")
	}

	if decoder != nil {
		t.Fatal("expected decoder to be nil for invalid format")
	}
}

func TestPCMDecode_EmptyInput(t *testing.T) {
	decoder, err := NewPCM(audio.Format{SampleRate: 48000, Channels: 2}, 16)
	if err != nil {
		t.Fatalf("failed to create decoder: %v", err)
	}

	buf, err := decoder.Decode(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("decode failed with empty input: %v", err)
	}

	if len(buf.Samples) != 0 {
		t.Errorf("expected 0 samples from empty input, got %d", len(buf.Samples))
	}
}
