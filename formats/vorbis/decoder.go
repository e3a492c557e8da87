// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frames     int64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis returns interleaved values, so keep the request frame aligned
	size := len(dst) - len(dst)%s.channels
	if size == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:size])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}

	if n == 0 && err == nil {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	// Length is 0 when the stream cannot be seeked to its last page
	frames := dec.Length()
	if frames <= 0 {
		frames = -1
	}

	channels := max(dec.Channels(), 1)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   channels,
		frames:     frames,
	}
}
