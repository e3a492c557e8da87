// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the zero NRGBA color.
var Transparent = color.NRGBA{}

// ParseColor accepts "#RRGGBB", "#AARRGGBB" or "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}

	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(0xff)

	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: bad alpha in color %q", ErrInvalidConfiguration, s)
		}
		alpha = uint8(a)
		hex = hex[2:]
	default:
		return color.NRGBA{}, fmt.Errorf("%w: color %q is not #RRGGBB or #AARRGGBB", ErrInvalidConfiguration, s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c color.NRGBA) string {
	if c == Transparent {
		return "transparent"
	}

	hex := toColorful(c).Hex()
	if c.A == 0xff {
		return hex
	}

	return fmt.Sprintf("#%02x%s", c.A, hex[1:])
}

// toColorful drops alpha; colorful.MakeColor would reject transparent colors.
func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// blend mixes a toward b by t in [0, 1], in RGB with a linear alpha ramp.
func blend(a, b color.NRGBA, t float64) color.NRGBA {
	t = min(max(t, 0), 1)

	r, g, bl := toColorful(a).BlendRgb(toColorful(b), t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t

	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}
