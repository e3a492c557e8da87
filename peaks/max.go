// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"github.com/ik5/waveform/audio"
	"gonum.org/v1/gonum/floats"
)

// MaxAbsolute reports the highest and lowest sample of each bucket.
type MaxAbsolute struct {
	r bucketReader
}

func NewMaxAbsolute() *MaxAbsolute { return &MaxAbsolute{} }

func (p *MaxAbsolute) Init(src audio.Source, samplesPerPeak int) error {
	return p.r.init(src, samplesPerPeak)
}

func (p *MaxAbsolute) NextPeak() (Peak, error) {
	buf, err := p.r.next()
	if err != nil || len(buf) == 0 {
		return Peak{}, err
	}

	return Peak{Max: floats.Max(buf), Min: floats.Min(buf)}, nil
}
