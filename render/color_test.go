// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#800000", color.NRGBA{R: 128, A: 255}},
		{"cd853f", color.NRGBA{R: 205, G: 133, B: 63, A: 255}},
		{"#40531603", color.NRGBA{R: 83, G: 22, B: 3, A: 64}},
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"transparent", Transparent},
		{" Transparent ", Transparent},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "#fff", "#12345", "#gg0000", "#zz112233", "red"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, in)
	}
}

func TestFormatColor_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []color.NRGBA{
		{R: 1, G: 2, B: 3, A: 255},
		{R: 197, G: 53, A: 196},
		Transparent,
	} {
		got, err := ParseColor(FormatColor(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestBlend(t *testing.T) {
	t.Parallel()

	a := color.NRGBA{R: 255, G: 255, B: 255, A: 64}
	b := color.NRGBA{A: 255}

	assert.Equal(t, a, blend(a, b, 0))
	assert.Equal(t, b, blend(a, b, 1))
	assert.Equal(t, a, blend(a, b, -3))
	assert.Equal(t, b, blend(a, b, 7))

	mid := blend(a, b, 0.5)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.InDelta(t, 160, int(mid.A), 1)
}

func TestPaint_ColorAt(t *testing.T) {
	t.Parallel()

	start := color.NRGBA{R: 255, A: 255}
	p := paint{pen: Pen{Color: color.NRGBA{B: 255, A: 255}, Start: &start}, outer: 0, mid: 10}

	assert.Greater(t, p.colorAt(0).R, p.colorAt(9).R)
	assert.Less(t, p.colorAt(0).B, p.colorAt(9).B)

	// Bottom gradients run upward from the image edge.
	q := p
	q.outer, q.mid = 20, 10
	assert.Greater(t, q.colorAt(19).R, q.colorAt(10).R)

	flat := paint{pen: Pen{Color: start}, outer: 0, mid: 10}
	assert.Equal(t, start, flat.colorAt(3))
}
