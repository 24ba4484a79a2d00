// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Output interface with oto and discard implementations
// Package output provides audio playback backends.
//
// The oto backend renders 16-bit PCM through the system audio device.
// Buffers whose rate or channel count differ from the open device are
// converted before playback.
//
// Example:
//
//	out := output.NewOto()
//	done, err := out.Play(buf)
//	<-done
package output
