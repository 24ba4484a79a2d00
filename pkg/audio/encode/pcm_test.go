// ABOUTME: Unit tests for PCM encoder
// ABOUTME: Tests 16-bit PCM encoding and bit depth validation
package encode

import (
	"encoding/binary"
	"strings"
	"testing"
)

func TestNewPCM(t *testing.T) {
	tests := []struct {
		name        string
		bitDepth    int
		wantErr     bool
		errContains string
	}{
		{name: "valid 16-bit PCM", bitDepth: 16},
		{name: "24-bit rejected", bitDepth: 24, wantErr: true, errContains: "supported: 16"},
		{name: "unsupported bit depth", bitDepth: 32, wantErr: true, errContains: "unsupported bit depth"},
		{name: "zero bit depth", bitDepth: 0, wantErr: true, errContains: "unsupported bit depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := NewPCM(tt.bitDepth)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPCM() expected error, got nil")
				} else if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewPCM() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Errorf("NewPCM() unexpected error = %v", err)
			}
			if encoder == nil {
				t.Errorf("NewPCM() returned nil encoder")
			}
		})
	}
}

func TestPCMEncoder_Encode16Bit(t *testing.T) {
	encoder, err := NewPCM(16)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int16{0, 32767, -32768, 0x1234, -0x5678}

	output, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if len(output) != len(samples)*2 {
		t.Errorf("Encode() output size = %d, want %d", len(output), len(samples)*2)
	}

	for i, expected := range samples {
		actual := int16(binary.LittleEndian.Uint16(output[i*2:]))
		if actual != expected {
			t.Errorf("Sample %d: got %d, want %d", i, actual, expected)
		}
	}
}

func TestPCMEncoder_Close(t *testing.T) {
	encoder, err := NewPCM(16)
	if err != nil {
		t.Fatalf("NewPCM() failed: %v", err)
	}

	if err := encoder.Close(); err != nil {
		t.Errorf("Close() unexpected error = %v", err)
	}
}
