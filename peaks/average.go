// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/utils"
	"gonum.org/v1/gonum/floats"
)

// ScaledAverage reports the bucket's mean absolute amplitude multiplied by
// scale, clamped to [0, 1], as a symmetric envelope.
type ScaledAverage struct {
	r     bucketReader
	scale float64
}

func NewScaledAverage(scale float64) *ScaledAverage { return &ScaledAverage{scale: scale} }

func (p *ScaledAverage) Init(src audio.Source, samplesPerPeak int) error {
	if p.scale <= 0 {
		return fmt.Errorf("%w: average scale must be positive, got %g", ErrInvalidConfiguration, p.scale)
	}

	return p.r.init(src, samplesPerPeak)
}

func (p *ScaledAverage) NextPeak() (Peak, error) {
	buf, err := p.r.next()
	if err != nil || len(buf) == 0 {
		return Peak{}, err
	}

	mean := floats.Norm(buf, 1) / float64(len(buf))
	v := utils.Clamp(mean*p.scale, 0, 1)

	return Peak{Max: v, Min: -v}, nil
}
