// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and 16-bit sample conversion functions
// Package audio provides the PCM types shared by the jes4go sound packages.
//
// This package defines core types used throughout the library:
//   - Format: Describes a PCM layout (sample rate, channel count)
//   - Buffer: Holds interleaved signed 16-bit samples with their Format
//
// It also provides utilities for converting between sample representations:
//   - int16 ↔ little-endian byte pairs
//   - 8/24/32-bit ↔ 16-bit scaling
//
// Example:
//
//	format := audio.Format{
//	    SampleRate: audio.DefaultSampleRate,
//	    Channels:   1,
//	}
//
//	// Frame size in bytes for this format
//	size := format.FrameSize()
package audio
