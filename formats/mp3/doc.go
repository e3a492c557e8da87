// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 Audio
// Layer 3 streams. go-mp3 always produces interleaved 16-bit stereo, so the
// returned audio.Source reports two channels even for mono files.
//
// Frames() is derived from the decoded length when the underlying reader is
// seekable, and is -1 otherwise.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File)
//	}
//	mono := audio.NewMonoMixer(src)
package mp3
