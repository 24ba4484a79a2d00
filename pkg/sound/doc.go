// ABOUTME: Sound buffer package modeled on the JES teaching library
// ABOUTME: Wraps a 16-bit PCM byte buffer with frame and sample accessors
// Package sound provides the Sound type: a mutable buffer of signed
// 16-bit little-endian PCM frames, mono or stereo, with WAV load/save and
// playback through an output.Output.
//
// A frame is one time slice across all channels (2 bytes per channel).
// A sample is one channel's value inside a frame. The historical accessor
// names Length, NumSamples and LengthInFrames all report the frame count.
//
// Example:
//
//	s, err := sound.Load("myFirstSound.wav")
//	v, err := s.SampleValueAt(100)
//	err = s.SetSampleValueAt(100, v/2)
//	err = s.Write("quieter.wav")
package sound
