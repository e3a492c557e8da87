// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Preset names.
const (
	PresetStandard                          = "Standard"
	PresetSoundCloudOriginal                = "SoundCloud Original"
	PresetSoundCloudLightBlocks             = "SoundCloud Light Blocks"
	PresetSoundCloudDarkerBlocks            = "SoundCloud Darker Blocks"
	PresetSoundCloudOrangeBlocks            = "SoundCloud Orange Blocks"
	PresetSoundCloudOrangeTransparentBlocks = "SoundCloud Orange Transparent Blocks"
	PresetSoundCloudGrayTransparentBlocks   = "SoundCloud Gray Transparent Blocks"
)

// Default geometry shared by every preset.
const (
	DefaultWidth        = 800
	DefaultTopHeight    = 50
	DefaultBottomHeight = 30
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 255} }

func argb(a, r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

func ref(c color.NRGBA) *color.NRGBA { return &c }

func base(name string) Settings {
	return Settings{
		Name:          name,
		Width:         DefaultWidth,
		TopHeight:     DefaultTopHeight,
		BottomHeight:  DefaultBottomHeight,
		PixelsPerPeak: 1,
	}
}

func standard() Settings {
	s := base(PresetStandard)
	s.TopPeakPen = Pen{Color: rgb(128, 0, 0)}       // maroon
	s.BottomPeakPen = Pen{Color: rgb(205, 133, 63)} // peru
	s.TopSpacerPen = s.TopPeakPen
	s.BottomSpacerPen = s.BottomPeakPen
	s.Background = Transparent

	return s
}

func soundCloudOriginal() Settings {
	s := base(PresetSoundCloudOriginal)
	s.PixelsPerPeak = 4
	s.SpacerPixels = 2

	s.TopPeakPen = Pen{Color: rgb(92, 92, 92), Start: ref(rgb(120, 120, 120))}
	s.TopSpacerPen = Pen{Color: rgb(186, 186, 186), Start: ref(white)}
	s.BottomPeakPen = Pen{Color: rgb(174, 174, 174)}
	s.BottomSpacerPen = Pen{Color: rgb(217, 217, 217)}
	s.Background = white

	return s
}

func soundCloudBlocks(name string, topPeak, topSpacer, bottomPeak, bottomSpacer color.NRGBA) Settings {
	s := base(name)
	s.PixelsPerPeak = 4
	s.SpacerPixels = 2
	s.TopPeakPen = Pen{Color: topPeak}
	s.TopSpacerPen = Pen{Color: topSpacer, Start: ref(white)}
	s.BottomPeakPen = Pen{Color: bottomPeak}
	s.BottomSpacerPen = Pen{Color: bottomSpacer}
	s.Background = white

	return s
}

// transparentBlocks narrows a block preset and fades its top spacer in from
// its own color.
func transparentBlocks(s Settings) Settings {
	s.PixelsPerPeak = 2
	s.SpacerPixels = 1
	s.TopSpacerPen.Start = ref(s.TopSpacerPen.Color)
	s.Background = Transparent

	return s
}

var presets = []func() Settings{
	standard,
	soundCloudOriginal,
	func() Settings {
		return soundCloudBlocks(PresetSoundCloudLightBlocks,
			rgb(102, 102, 102), rgb(103, 103, 103), rgb(179, 179, 179), rgb(218, 218, 218))
	},
	func() Settings {
		return soundCloudBlocks(PresetSoundCloudDarkerBlocks,
			rgb(52, 52, 52), rgb(55, 55, 55), rgb(154, 154, 154), rgb(204, 204, 204))
	},
	func() Settings {
		return soundCloudBlocks(PresetSoundCloudOrangeBlocks,
			rgb(255, 76, 0), rgb(255, 52, 2), rgb(255, 171, 141), rgb(255, 213, 199))
	},
	func() Settings {
		return transparentBlocks(soundCloudBlocks(PresetSoundCloudOrangeTransparentBlocks,
			argb(196, 197, 53, 0), argb(64, 83, 22, 3), argb(196, 79, 26, 0), argb(64, 79, 79, 79)))
	},
	func() Settings {
		return transparentBlocks(soundCloudBlocks(PresetSoundCloudGrayTransparentBlocks,
			argb(196, 224, 225, 224), argb(64, 224, 224, 224), argb(196, 128, 128, 128), argb(64, 128, 128, 128)))
	},
}

// Presets lists the preset names in display order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p().Name)
	}

	return names
}

// Preset returns a fresh copy of the named preset. Names are matched
// case-insensitively.
func Preset(name string) (Settings, error) {
	i := slices.IndexFunc(presets, func(p func() Settings) bool {
		return strings.EqualFold(p().Name, strings.TrimSpace(name))
	})
	if i < 0 {
		return Settings{}, fmt.Errorf("%w: unknown style %q", ErrInvalidConfiguration, name)
	}

	return presets[i](), nil
}
