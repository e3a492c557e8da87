// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	dec        flacReader
	sampleRate int
	channels   int
	bitDepth   int
	frames     int64
	pending    []float32 // decoded samples not yet handed out
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Frames() int64   { return s.frames }
func (s *source) Close() error    { return s.dec.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if err := s.decodeFrame(); err != nil {
				if err == io.EOF && written > 0 {
					return written, nil
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

// decodeFrame parses the next FLAC frame and interleaves its subframes.
func (s *source) decodeFrame() error {
	f, err := s.dec.ParseNext()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) < s.channels {
		return fmt.Errorf("decoding flac frame: %d subframes for %d channels", len(f.Subframes), s.channels)
	}

	nSamples := f.Subframes[0].NSamples
	buf := make([]float32, 0, nSamples*s.channels)
	for i := range nSamples {
		for ch := range s.channels {
			buf = append(buf, utils.IntToFloat32(int(f.Subframes[ch].Samples[i]), s.bitDepth))
		}
	}
	s.pending = buf

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.BitsPerSample > 32 {
		_ = stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	// NSamples is 0 when the encoder did not know the stream length
	frames := int64(info.NSamples)
	if frames == 0 {
		frames = -1
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   max(int(info.NChannels), 1),
		bitDepth:   int(info.BitsPerSample),
		frames:     frames,
	}, nil
}
