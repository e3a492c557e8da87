// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
)

// bucketReader pulls fixed-size buckets from a source, widened to float64
// for the gonum routines.
type bucketReader struct {
	src  audio.Source
	size int
	raw  []float32
	buf  []float64
	done bool
}

func (b *bucketReader) init(src audio.Source, size int) error {
	if src == nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, audio.ErrNilSource)
	}

	if size < 1 {
		return fmt.Errorf("%w: samples per peak must be at least 1, got %d", ErrInvalidConfiguration, size)
	}

	b.src = src
	b.size = size
	b.done = false

	if cap(b.raw) < size {
		b.raw = make([]float32, size)
		b.buf = make([]float64, size)
	}
	b.raw = b.raw[:size]

	return nil
}

// next returns the next bucket. The slice is reused by the following call
// and is empty once the source is drained.
func (b *bucketReader) next() ([]float64, error) {
	if b.src == nil {
		return nil, fmt.Errorf("%w: provider used before Init", ErrInvalidConfiguration)
	}

	if b.done {
		return b.buf[:0], nil
	}

	n := 0
	for n < b.size {
		m, err := b.src.ReadSamples(b.raw[n:])
		n += m

		if err == io.EOF {
			b.done = true
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading bucket: %w", err)
		}

		if m == 0 {
			b.done = true
			break
		}
	}

	buf := b.buf[:n]
	for i, v := range b.raw[:n] {
		buf[i] = float64(v)
	}

	return buf, nil
}
