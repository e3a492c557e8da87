// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic sample sources for tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrMockRead is returned by sources built with FailAfter.
var ErrMockRead = errors.New("mock read failure")

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	reportedFrames int64 // value returned by Frames()
	failAfter      int   // fail once generated reaches this frame; <0 disables
	chunk          int   // max frames per ReadSamples call; 0 means unlimited
	closed         bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:     sampleRate,
		channels:       channels,
		totalSamples:   totalSamples,
		waveform:       waveform,
		reportedFrames: int64(totalSamples),
		failAfter:      -1,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewSliceSource plays back a fixed mono sample slice.
func NewSliceSource(sampleRate int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, 1, len(samples), func(sample int, channel int) float32 {
		return samples[sample]
	})
}

// WithReportedFrames makes Frames() return n regardless of how many frames
// are actually produced. Use -1 for an unknown length, or a value larger
// than the real length to simulate a truncated file.
func (m *MockSource) WithReportedFrames(n int64) *MockSource {
	m.reportedFrames = n
	return m
}

// FailAfter makes ReadSamples return ErrMockRead once frame has been generated.
func (m *MockSource) FailAfter(frame int) *MockSource {
	m.failAfter = frame
	return m
}

// WithChunk caps how many frames a single ReadSamples call returns.
func (m *MockSource) WithChunk(frames int) *MockSource {
	m.chunk = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Frames() int64   { return m.reportedFrames }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.chunk > 0 {
		framesToWrite = min(framesToWrite, m.chunk)
	}

	if m.failAfter >= 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	// Generate samples
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
