// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"math"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/utils"
)

// DefaultDynamicRange is the floor, in dB below full scale, under which
// Decibel flattens amplitude to zero.
const DefaultDynamicRange = 48.0

// Decibel remaps the peaks of another Provider onto a logarithmic scale.
// Full scale maps to 1, anything at or below -dynamicRange dBFS maps to 0,
// and the sign of each value is kept.
type Decibel struct {
	inner        Provider
	dynamicRange float64
}

// NewDecibel wraps inner. A non-positive dynamicRange selects
// DefaultDynamicRange.
func NewDecibel(inner Provider, dynamicRange float64) *Decibel {
	if dynamicRange <= 0 {
		dynamicRange = DefaultDynamicRange
	}

	return &Decibel{inner: inner, dynamicRange: dynamicRange}
}

func (d *Decibel) Init(src audio.Source, samplesPerPeak int) error {
	if d.inner == nil {
		return fmt.Errorf("%w: decibel scale needs an inner provider", ErrInvalidConfiguration)
	}

	return d.inner.Init(src, samplesPerPeak)
}

func (d *Decibel) NextPeak() (Peak, error) {
	pk, err := d.inner.NextPeak()
	if err != nil {
		return Peak{}, err
	}

	return Peak{Max: d.scale(pk.Max), Min: d.scale(pk.Min)}, nil
}

func (d *Decibel) scale(v float64) float64 {
	if v == 0 {
		return 0
	}

	db := utils.Clamp(utils.AmplitudeToDecibels(v), -d.dynamicRange, 0)
	out := (d.dynamicRange + db) / d.dynamicRange
	if out == 0 {
		return 0
	}

	return math.Copysign(out, v)
}
