// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/peaks"
)

// ErrInvalidConfiguration is peaks.ErrInvalidConfiguration, so callers can
// check either package's name.
var ErrInvalidConfiguration = peaks.ErrInvalidConfiguration

// Image is a rendered waveform, either a *Bitmap or a *Vector.
type Image interface {
	Bounds() image.Rectangle
	Kind() OutputKind
	// Encode writes PNG for raster images and SVG for vector images.
	Encode(w io.Writer) error
}

// Render draws src as a waveform. Multi-channel sources are mixed to mono;
// sources of unknown length are buffered in memory first. The provider is
// initialized by Render and must not be shared with a concurrent render.
// src is not closed.
func Render(src audio.Source, provider peaks.Provider, settings Settings) (Image, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, audio.ErrNilSource)
	}

	if provider == nil {
		return nil, fmt.Errorf("%w: nil peak provider", ErrInvalidConfiguration)
	}

	var mono audio.Source = audio.NewMonoMixer(src)

	frames := mono.Frames()
	if frames < 0 {
		buf, err := audio.ReadAll(mono, 0)
		if err != nil {
			return nil, fmt.Errorf("buffering source: %w", err)
		}
		mono, frames = buf, buf.Frames()
	}

	// The last column absorbs the remainder of the integer division.
	samplesPerPixel := max(int(frames/int64(settings.Width)), 1)
	bucket := samplesPerPixel * (settings.PixelsPerPeak + settings.SpacerPixels)

	if settings.DecibelScale {
		provider = peaks.NewDecibel(provider, peaks.DefaultDynamicRange)
	}

	if err := provider.Init(mono, bucket); err != nil {
		return nil, fmt.Errorf("initializing peak provider: %w", err)
	}

	var (
		dst surface
		img Image
	)

	switch settings.Output {
	case VectorOutput:
		v := newVector(settings.Width, settings.Height())
		dst, img = v, v
	default:
		b := newBitmap(settings.Width, settings.Height())
		dst, img = b, b
	}

	dst.fill(settings.Background, settings.BackgroundImage)

	if err := walk(dst, provider, settings); err != nil {
		return nil, fmt.Errorf("rendering peaks: %w", err)
	}

	return img, nil
}
