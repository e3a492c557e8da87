// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer is an in-memory Source over already decoded interleaved samples.
// It always knows its length, which makes it the fallback for streams whose
// Frames() is unknown.
type Buffer struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBuffer wraps interleaved samples. channels below 1 are treated as mono.
func NewBuffer(samples []float32, sampleRate, channels int) *Buffer {
	if channels < 1 {
		channels = 1
	}

	return &Buffer{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *Buffer) SampleRate() int { return b.sampleRate }
func (b *Buffer) Channels() int   { return b.channels }
func (b *Buffer) Frames() int64   { return int64(len(b.samples) / b.channels) }
func (b *Buffer) Close() error    { return nil }

func (b *Buffer) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// ReadAll drains src into a Buffer, keeping its sample rate and channel
// layout. src is not closed.
//
// Example:
//
//	src, _ := decoder.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(buf.Frames())
func ReadAll(src Source, bufferSize int) (*Buffer, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	if bufferSize <= 0 {
		bufferSize = 4096
	}

	channels := max(src.Channels(), 1)
	// Keep reads frame aligned.
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	var samples []float32
	if frames := src.Frames(); frames > 0 {
		samples = make([]float32, 0, frames*int64(channels))
	}

	buf := make([]float32, bufferSize)
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// A source that makes no progress without EOF is treated as finished.
			break
		}
	}

	return NewBuffer(samples, src.SampleRate(), channels), nil
}
