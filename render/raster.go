// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Bitmap is a rendered raster waveform. It is a regular *image.NRGBA and
// can be passed to any image encoder.
type Bitmap struct {
	*image.NRGBA
}

func newBitmap(width, height int) *Bitmap {
	return &Bitmap{NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

func (b *Bitmap) Kind() OutputKind { return RasterOutput }

// Encode writes the bitmap as PNG.
func (b *Bitmap) Encode(w io.Writer) error {
	if err := png.Encode(w, b.NRGBA); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}

// A new NRGBA is fully transparent, so a transparent background needs no work.
func (b *Bitmap) fill(bg color.NRGBA, img image.Image) {
	bounds := b.Bounds()

	if bg.A != 0 {
		draw.Draw(b.NRGBA, bounds, image.NewUniform(bg), image.Point{}, draw.Src)
	}

	if img != nil && !img.Bounds().Empty() {
		draw.BiLinear.Scale(b.NRGBA, bounds, img, img.Bounds(), draw.Over, nil)
	}
}

func (b *Bitmap) segment(x, y0, y1 int, p paint) {
	if y1 <= y0 {
		return
	}

	w := p.pen.width()
	if !p.gradient() {
		b.stroke(image.Rect(x, y0, x+w, y1), p.pen.Color)
		return
	}

	for y := y0; y < y1; y++ {
		b.stroke(image.Rect(x, y, x+w, y+1), p.colorAt(y))
	}
}

func (b *Bitmap) stroke(r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(b.Bounds())
	if r.Empty() || c.A == 0 {
		return
	}

	draw.Draw(b.NRGBA, r, image.NewUniform(c), image.Point{}, draw.Over)
}
