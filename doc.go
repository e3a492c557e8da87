// SPDX-License-Identifier: EPL-2.0

// Package waveform renders audio files as waveform images.
//
// The package ties the pieces together: a decoder from the audio registry
// turns a file into an audio.Source, a peaks.Provider reduces it to one
// amplitude summary per bucket, and the render package draws those peaks as
// a PNG bitmap or an SVG document.
//
// # Supported Formats
//
// DefaultRegistry knows these formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - AIFF via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//
// # Quick Start
//
//	s, _ := render.Preset(render.PresetSoundCloudOrangeBlocks)
//	img, err := waveform.RenderFile("song.mp3", waveform.Options{
//	    Strategy: "rms",
//	    Settings: s,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, _ := os.Create("song.png")
//	defer out.Close()
//	img.Encode(out)
//
// # Building Blocks
//
// For more control use the subpackages directly:
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	p := peaks.NewScaledAverage(4)
//	img, err := render.Render(src, p, settings)
//
// # Error Handling
//
// Configuration problems (unknown strategy, bad geometry) fail with
// render.ErrInvalidConfiguration before any audio is read. Unknown formats
// fail with ErrUnsupportedFormat. Decoder errors are passed through wrapped,
// so errors.Is works with the sentinels of each formats package.
package waveform
