// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"

	"github.com/ik5/waveform/peaks"
)

// surface is what both backends draw on. Geometry is decided once in walk,
// so raster and vector output cannot drift apart.
type surface interface {
	fill(bg color.NRGBA, img image.Image)
	// segment strokes rows [y0, y1) starting at column x.
	segment(x, y0, y1 int, p paint)
}

// paint is a pen bound to the rows its gradient spans.
type paint struct {
	pen   Pen
	outer int // row where a gradient starts
	mid   int // row where a gradient reaches pen.Color
}

func (p paint) gradient() bool { return p.pen.Start != nil && p.outer != p.mid }

// colorAt is the stroke color of row y, sampled at the pixel center.
func (p paint) colorAt(y int) color.NRGBA {
	if !p.gradient() {
		return p.pen.Color
	}

	t := (float64(y) + 0.5 - float64(p.outer)) / float64(p.mid-p.outer)

	return blend(*p.pen.Start, p.pen.Color, t)
}

// columnPaints holds the four pens of a Settings bound to its geometry.
type columnPaints struct {
	topPeak, bottomPeak, topSpacer, bottomSpacer paint
}

func newColumnPaints(s Settings) columnPaints {
	mid, h := s.TopHeight, s.Height()

	return columnPaints{
		topPeak:      paint{pen: s.TopPeakPen, outer: 0, mid: mid},
		bottomPeak:   paint{pen: s.BottomPeakPen, outer: h, mid: mid},
		topSpacer:    paint{pen: s.TopSpacerPen, outer: 0, mid: mid},
		bottomSpacer: paint{pen: s.BottomSpacerPen, outer: h, mid: mid},
	}
}

// walk pulls peaks from p and draws exactly s.Width columns on dst. Each
// peak covers PixelsPerPeak columns, then SpacerPixels columns show the
// lower envelope of it and the next peak.
func walk(dst surface, p peaks.Provider, s Settings) error {
	pp := newColumnPaints(s)

	cur, err := p.NextPeak()
	if err != nil {
		return err
	}

	x := 0
	for x < s.Width {
		next, err := p.NextPeak()
		if err != nil {
			return err
		}

		for n := 0; n < s.PixelsPerPeak && x < s.Width; n++ {
			column(dst, s, x, cur, pp.topPeak, pp.bottomPeak)
			x++
		}

		valley := peaks.Peak{
			Max: min(cur.Max, next.Max),
			Min: max(cur.Min, next.Min),
		}
		for n := 0; n < s.SpacerPixels && x < s.Width; n++ {
			column(dst, s, x, valley, pp.topSpacer, pp.bottomSpacer)
			x++
		}

		cur = next
	}

	return nil
}

// column draws the top and bottom bar of one column. Bars are measured from
// the center line y = TopHeight and clipped to the image.
func column(dst surface, s Settings, x int, pk peaks.Peak, top, bottom paint) {
	mid := s.TopHeight

	topY := mid - roundHeight(s.TopHeight, pk.Max)
	dst.segment(x, clipRow(min(mid, topY), s), clipRow(max(mid, topY), s), top)

	bottomY := mid - roundHeight(s.BottomHeight, pk.Min)
	dst.segment(x, clipRow(min(mid, bottomY), s), clipRow(max(mid, bottomY), s), bottom)
}

func roundHeight(extent int, v float64) int {
	f := float64(extent) * v
	if f < 0 {
		return -int(-f + 0.5)
	}

	return int(f + 0.5)
}

func clipRow(y int, s Settings) int { return min(max(y, 0), s.Height()) }
