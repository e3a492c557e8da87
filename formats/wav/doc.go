// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding.
//
// Parsing is delegated to github.com/go-audio/wav, which walks the RIFF
// chunk list, so files with LIST/fact chunks before the data chunk work.
//
// # Supported Formats
//
//   - Integer PCM, 8/16/24/32-bit (WAVE_FORMAT_PCM and WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count and sample rate
//
// IEEE float and compressed WAV payloads are rejected with ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(source.Frames()) // known from the data chunk size
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. The reader is seeked when it is an
// io.ReadSeeker (e.g. *os.File); other readers are buffered in memory first.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the payload is not integer PCM
//   - ErrUnsupportedBitDepth: bit depth other than 8/16/24/32
//   - ErrUnsupportedWavChunks: no usable data chunk
//
// Use errors.Is to test for them.
package wav
