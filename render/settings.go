// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/color"
)

// OutputKind selects the drawing backend.
type OutputKind int

const (
	// RasterOutput renders into an RGBA bitmap.
	RasterOutput OutputKind = iota
	// VectorOutput records drawing operations and encodes them as SVG.
	VectorOutput
)

func (k OutputKind) String() string {
	switch k {
	case RasterOutput:
		return "raster"
	case VectorOutput:
		return "vector"
	default:
		return fmt.Sprintf("OutputKind(%d)", int(k))
	}
}

// Pen describes how one kind of column is stroked. When Start is set the
// stroke is a vertical gradient from Start at the outer image edge to Color
// at the center line.
type Pen struct {
	Color color.NRGBA
	Width int // 0 means 1 pixel
	Start *color.NRGBA
}

func (p Pen) width() int { return max(p.Width, 1) }

// Settings is the complete description of one rendered image. Render never
// modifies it, so a Settings value can be shared between goroutines.
type Settings struct {
	Name string

	Width        int
	TopHeight    int
	BottomHeight int

	// PixelsPerPeak columns draw each peak, followed by SpacerPixels
	// columns that show the lower envelope of it and the next peak.
	PixelsPerPeak int
	SpacerPixels  int

	DecibelScale bool
	Output       OutputKind

	TopPeakPen      Pen
	BottomPeakPen   Pen
	TopSpacerPen    Pen
	BottomSpacerPen Pen

	// Background is filled first unless fully transparent. BackgroundImage,
	// when set, is stretched over the whole image on top of it.
	Background      color.NRGBA
	BackgroundImage image.Image
}

// Height is the full image height.
func (s Settings) Height() int { return s.TopHeight + s.BottomHeight }

// Validate reports the first setting that would make Render fail.
func (s Settings) Validate() error {
	switch {
	case s.Width < 1:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, s.Width)
	case s.TopHeight < 0 || s.BottomHeight < 0:
		return fmt.Errorf("%w: heights must not be negative, got %d/%d", ErrInvalidConfiguration, s.TopHeight, s.BottomHeight)
	case s.Height() < 1:
		return fmt.Errorf("%w: top and bottom height are both zero", ErrInvalidConfiguration)
	case s.PixelsPerPeak < 1:
		return fmt.Errorf("%w: pixels per peak must be at least 1, got %d", ErrInvalidConfiguration, s.PixelsPerPeak)
	case s.SpacerPixels < 0:
		return fmt.Errorf("%w: spacer pixels must not be negative, got %d", ErrInvalidConfiguration, s.SpacerPixels)
	case s.Output != RasterOutput && s.Output != VectorOutput:
		return fmt.Errorf("%w: unknown output kind %d", ErrInvalidConfiguration, int(s.Output))
	}

	for _, p := range []Pen{s.TopPeakPen, s.BottomPeakPen, s.TopSpacerPen, s.BottomSpacerPen} {
		if p.Width < 0 {
			return fmt.Errorf("%w: pen width must not be negative, got %d", ErrInvalidConfiguration, p.Width)
		}
	}

	return nil
}
