// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source that yields float32 samples in the range [-1.0, 1.0].
//
// Supported input:
//   - PCM 8, 16, 24 and 32-bit
//   - Mono and multi-channel
//   - Any sample rate
//
// The decoder reports the frame count from the COMM chunk, so renderers can
// size their peak buckets without buffering the whole file.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, aiff.ErrNotAiffFile) etc.
//	}
//	defer src.Close()
package aiff
