// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/waveform/audio"
)

// go-mp3 always emits interleaved 16-bit stereo.
const (
	outputChannels = 2
	bytesPerFrame  = outputChannels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	frames     int64
	buf        []byte
	pending    []byte // odd trailing byte from the previous Read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	off := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(s.buf[off:])
	n += off
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / 2
	if n%2 == 1 {
		s.pending = append(s.pending, s.buf[n-1])
	}

	for i := range samples {
		val := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(val) / 32768.0
	}

	if samples == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return newSource(dec), nil
}

func newSource(dec mp3Reader) *source {
	frames := int64(-1)
	if l := dec.Length(); l >= 0 {
		frames = l / bytesPerFrame
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   outputChannels,
		frames:     frames,
		buf:        make([]byte, 8192),
	}
}
