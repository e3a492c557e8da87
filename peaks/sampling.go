// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"

	"github.com/ik5/waveform/audio"
)

// Sampling looks only at every blockSize-th sample of a bucket. The whole
// bucket is still consumed from the source.
type Sampling struct {
	r         bucketReader
	blockSize int
}

func NewSampling(blockSize int) *Sampling { return &Sampling{blockSize: blockSize} }

func (p *Sampling) Init(src audio.Source, samplesPerPeak int) error {
	if p.blockSize < 1 {
		return fmt.Errorf("%w: sampling stride must be at least 1, got %d", ErrInvalidConfiguration, p.blockSize)
	}

	return p.r.init(src, samplesPerPeak)
}

func (p *Sampling) NextPeak() (Peak, error) {
	buf, err := p.r.next()
	if err != nil || len(buf) == 0 {
		return Peak{}, err
	}

	pk := Peak{Max: buf[0], Min: buf[0]}
	for i := p.blockSize; i < len(buf); i += p.blockSize {
		pk.Max = max(pk.Max, buf[i])
		pk.Min = min(pk.Min, buf[i])
	}

	return pk, nil
}
