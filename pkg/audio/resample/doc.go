// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts audio between different sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling of interleaved int16 audio.
//
// Example:
//
//	r := resample.New(22050, 48000, 1)
//	n := r.Resample(inputSamples, outputSamples)
package resample
