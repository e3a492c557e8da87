// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// Vector is a resolution independent recording of a render. Encode writes
// it as SVG; Rasterize replays it onto a Bitmap.
type Vector struct {
	width, height   int
	background      color.NRGBA
	backgroundImage image.Image
	segments        []vectorSegment
}

type vectorSegment struct {
	x, y0, y1 int
	paint     paint
}

func newVector(width, height int) *Vector {
	return &Vector{width: width, height: height}
}

func (v *Vector) Bounds() image.Rectangle { return image.Rect(0, 0, v.width, v.height) }
func (v *Vector) Kind() OutputKind        { return VectorOutput }

// Len is the number of recorded segments.
func (v *Vector) Len() int { return len(v.segments) }

func (v *Vector) fill(bg color.NRGBA, img image.Image) {
	v.background = bg
	v.backgroundImage = img
}

func (v *Vector) segment(x, y0, y1 int, p paint) {
	if y1 <= y0 {
		return
	}

	v.segments = append(v.segments, vectorSegment{x: x, y0: y0, y1: y1, paint: p})
}

// Rasterize replays the recording onto a new Bitmap. The result is pixel
// identical to rendering the same input with the raster backend.
func (v *Vector) Rasterize() *Bitmap {
	b := newBitmap(v.width, v.height)
	b.fill(v.background, v.backgroundImage)

	for _, s := range v.segments {
		b.segment(s.x, s.y0, s.y1, s.paint)
	}

	return b
}

// Encode writes the recording as an SVG document.
func (v *Vector) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(v.width, v.height)

	if v.background.A != 0 {
		canvas.Rect(0, 0, v.width, v.height, fillAttrs(v.background)...)
	}

	if v.backgroundImage != nil {
		href, err := dataURI(v.backgroundImage)
		if err != nil {
			return err
		}
		canvas.Image(0, 0, v.width, v.height, href, `preserveAspectRatio="none"`)
	}

	gradients := v.writeGradients(canvas)

	for _, s := range v.segments {
		attrs := fillAttrs(s.paint.pen.Color)
		if id, ok := gradients[gradientKey(s.paint)]; ok {
			attrs = []string{fmt.Sprintf(`fill="url(#%s)"`, id)}
		}
		canvas.Rect(s.x, s.y0, s.paint.pen.width(), s.y1-s.y0, attrs...)
	}

	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("writing svg: %w", ew.err)
	}

	return nil
}

// writeGradients emits one user-space gradient per distinct gradient paint.
// svgo's LinearGradient only speaks bounding-box percentages, so the
// elements are written directly.
func (v *Vector) writeGradients(canvas *svg.SVG) map[string]string {
	ids := make(map[string]string)

	for _, s := range v.segments {
		if !s.paint.gradient() {
			continue
		}

		key := gradientKey(s.paint)
		if _, ok := ids[key]; ok {
			continue
		}

		if len(ids) == 0 {
			canvas.Def()
		}

		id := "g" + strconv.Itoa(len(ids))
		ids[key] = id

		start, end := *s.paint.pen.Start, s.paint.pen.Color
		fmt.Fprintf(canvas.Writer,
			`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="0" y1="%d" x2="0" y2="%d">`+"\n",
			id, s.paint.outer, s.paint.mid)
		fmt.Fprintf(canvas.Writer, `<stop offset="0" stop-color="%s" stop-opacity="%s"/>`+"\n",
			toColorful(start).Hex(), opacity(start))
		fmt.Fprintf(canvas.Writer, `<stop offset="1" stop-color="%s" stop-opacity="%s"/>`+"\n",
			toColorful(end).Hex(), opacity(end))
		fmt.Fprintln(canvas.Writer, `</linearGradient>`)
	}

	if len(ids) > 0 {
		canvas.DefEnd()
	}

	return ids
}

func gradientKey(p paint) string {
	if !p.gradient() {
		return ""
	}

	return fmt.Sprintf("%s>%s@%d:%d", FormatColor(*p.pen.Start), FormatColor(p.pen.Color), p.outer, p.mid)
}

func fillAttrs(c color.NRGBA) []string {
	attrs := []string{fmt.Sprintf(`fill="%s"`, toColorful(c).Hex())}
	if c.A != 0xff {
		attrs = append(attrs, fmt.Sprintf(`fill-opacity="%s"`, opacity(c)))
	}

	return attrs
}

func opacity(c color.NRGBA) string {
	return strconv.FormatFloat(float64(c.A)/255, 'f', 4, 64)
}

func dataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding background image: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// errWriter keeps the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	e.err = err

	return n, err
}
