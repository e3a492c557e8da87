// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder, to
// turn Ogg Vorbis streams into an audio.Source of interleaved float32
// samples. The frame count is taken from the last Ogg page when the reader
// is seekable, and is -1 otherwise.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
package vorbis
