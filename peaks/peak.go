// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"errors"

	"github.com/ik5/waveform/audio"
)

// ErrInvalidConfiguration is returned for unknown strategy names and for
// parameters outside their valid range.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Peak summarizes the amplitude excursion of one bucket. The zero value is
// silence.
type Peak struct {
	Max float64
	Min float64
}

// Provider produces one Peak per bucket of a sample source.
type Provider interface {
	// Init resets the provider and binds it to src with the given bucket size.
	Init(src audio.Source, samplesPerPeak int) error
	// NextPeak consumes one bucket, or whatever remains of the source.
	NextPeak() (Peak, error)
}
