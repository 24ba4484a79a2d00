// ABOUTME: Audio decoder package for multiple codec support
// ABOUTME: Provides Decoder interface and implementations for PCM, FLAC, MP3
// Package decode provides audio decoders for various codecs.
//
// Supports: raw PCM (16-bit little-endian), FLAC, MP3
//
// All decoders read a complete stream and return an audio.Buffer of
// interleaved 16-bit samples with at most two channels.
//
// Example:
//
//	decoder, err := decode.ForFile("song.mp3")
//	buf, err := decoder.Decode(f)
package decode
