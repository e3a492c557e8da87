// SPDX-License-Identifier: EPL-2.0

// Package peaks reduces a sample stream to one amplitude summary per bucket.
//
// A Provider is bound to a mono audio.Source and a bucket size with Init,
// then asked for one Peak per bucket with NextPeak. Four strategies are
// available:
//
//   - MaxAbsolute: the largest and smallest sample of the bucket
//   - RMS: the loudest root-mean-square sub-block, as a symmetric envelope
//   - Sampling: max/min over every n-th sample, for very long buckets
//   - ScaledAverage: mean absolute amplitude times a gain, clamped to 1
//
// Decibel wraps any Provider and remaps its output onto a logarithmic scale
// with a fixed dynamic-range floor.
//
// Strategies can be picked by name, which is how the CLI and the waveform
// package expose them:
//
//	p, err := peaks.New("rms", peaks.WithBlockSize(100))
//	if err != nil {
//	    // errors.Is(err, peaks.ErrInvalidConfiguration)
//	}
//	if err := p.Init(src, 1024); err != nil {
//	    return err
//	}
//	for {
//	    pk, err := p.NextPeak()
//	    ...
//	}
//
// Once the source is drained NextPeak keeps returning the zero Peak, so a
// caller that walks a fixed number of columns simply draws silence at the end
// of a short or truncated stream.
package peaks
