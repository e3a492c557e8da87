// SPDX-License-Identifier: EPL-2.0

// Package render draws peak sequences as waveform images.
//
// Render reads a sample source through a peaks.Provider and draws exactly
// Settings.Width columns, each split at the center line y = TopHeight into a
// top bar (scaled by TopHeight) and a bottom bar (scaled by BottomHeight).
// Every peak is drawn PixelsPerPeak columns wide and followed by
// SpacerPixels columns showing the lower envelope of it and its successor.
//
// Two backends share that column walk:
//
//   - RasterOutput draws into a *Bitmap (an *image.NRGBA) and encodes PNG.
//   - VectorOutput records the same segments into a *Vector, which encodes
//     SVG through github.com/ajstarks/svgo and can be rasterized back into a
//     Bitmap pixel for pixel.
//
// Named styles are available through Preset:
//
//	s, _ := render.Preset(render.PresetSoundCloudOrangeBlocks)
//	s.Width = 1200
//	p, _ := peaks.New("rms")
//	img, err := render.Render(src, p, s)
//	if err != nil {
//	    return err
//	}
//	return img.Encode(out)
package render
