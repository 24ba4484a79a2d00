// ABOUTME: Audio encoder package for encoding samples to PCM bytes
// ABOUTME: Provides Encoder interface and a PCM implementation
// Package encode provides audio encoders.
//
// Supports: PCM (16-bit little-endian)
//
// Encoders accept interleaved int16 samples, the in-memory
// representation used by the sound package.
//
// Example:
//
//	encoder, err := encode.NewPCM(16)
//	data, err := encoder.Encode(samples)
package encode
