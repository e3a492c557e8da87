// SPDX-License-Identifier: EPL-2.0

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_AllValid(t *testing.T) {
	t.Parallel()

	names := Presets()
	require.Len(t, names, 7)
	assert.Equal(t, PresetStandard, names[0])

	for _, name := range names {
		s, err := Preset(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, s.Name)
		assert.NoError(t, s.Validate(), name)
		assert.Equal(t, DefaultWidth, s.Width)
		assert.Equal(t, DefaultTopHeight+DefaultBottomHeight, s.Height())
	}
}

func TestPreset_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ppp, spacer int
		transparent bool
	}{
		{PresetStandard, 1, 0, true},
		{PresetSoundCloudOriginal, 4, 2, false},
		{PresetSoundCloudLightBlocks, 4, 2, false},
		{PresetSoundCloudOrangeTransparentBlocks, 2, 1, true},
		{PresetSoundCloudGrayTransparentBlocks, 2, 1, true},
	}

	for _, tt := range tests {
		s, err := Preset(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.ppp, s.PixelsPerPeak, tt.name)
		assert.Equal(t, tt.spacer, s.SpacerPixels, tt.name)
		assert.Equal(t, tt.transparent, s.Background == Transparent, tt.name)
	}
}

func TestPreset_CaseInsensitive(t *testing.T) {
	t.Parallel()

	s, err := Preset("soundcloud orange blocks")
	require.NoError(t, err)
	assert.Equal(t, PresetSoundCloudOrangeBlocks, s.Name)
}

func TestPreset_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Preset("Nonexistent")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPreset_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a, err := Preset(PresetSoundCloudLightBlocks)
	require.NoError(t, err)
	a.TopSpacerPen.Start.R = 1
	a.Width = 5

	b, err := Preset(PresetSoundCloudLightBlocks)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), b.TopSpacerPen.Start.R)
	assert.Equal(t, DefaultWidth, b.Width)
}

func TestOutputKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "raster", RasterOutput.String())
	assert.Equal(t, "vector", VectorOutput.String())
	assert.Equal(t, "OutputKind(9)", OutputKind(9).String())
}
