// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"math"

	"github.com/ik5/waveform/audio"
	"gonum.org/v1/gonum/floats"
)

// RMS splits each bucket into blockSize sub-blocks and reports the loudest
// sub-block's RMS as a symmetric envelope.
type RMS struct {
	r         bucketReader
	blockSize int
}

func NewRMS(blockSize int) *RMS { return &RMS{blockSize: blockSize} }

func (p *RMS) Init(src audio.Source, samplesPerPeak int) error {
	if p.blockSize < 1 {
		return fmt.Errorf("%w: rms block size must be at least 1, got %d", ErrInvalidConfiguration, p.blockSize)
	}

	return p.r.init(src, samplesPerPeak)
}

func (p *RMS) NextPeak() (Peak, error) {
	buf, err := p.r.next()
	if err != nil || len(buf) == 0 {
		return Peak{}, err
	}

	var loudest float64
	for start := 0; start < len(buf); start += p.blockSize {
		block := buf[start:min(start+p.blockSize, len(buf))]
		// The trailing partial block is averaged over its own length.
		rms := math.Sqrt(floats.Dot(block, block) / float64(len(block)))
		loudest = max(loudest, rms)
	}

	return Peak{Max: loudest, Min: -loudest}, nil
}
