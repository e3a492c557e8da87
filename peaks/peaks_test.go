// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"math"
	"testing"

	"github.com/ik5/waveform/internal/audiotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slice(samples ...float32) *audiotest.MockSource {
	return audiotest.NewSliceSource(8000, samples)
}

// drain collects n peaks from p.
func drain(t *testing.T, p Provider, n int) []Peak {
	t.Helper()

	out := make([]Peak, 0, n)
	for range n {
		pk, err := p.NextPeak()
		require.NoError(t, err)
		out = append(out, pk)
	}

	return out
}

func TestMaxAbsolute_Envelope(t *testing.T) {
	t.Parallel()

	p := NewMaxAbsolute()
	require.NoError(t, p.Init(slice(0.2, -0.5, 0.9, -0.1), 4))

	pk, err := p.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, pk.Max, 1e-6)
	assert.InDelta(t, -0.5, pk.Min, 1e-6)
}

func TestMaxAbsolute_PartialLastBucket(t *testing.T) {
	t.Parallel()

	p := NewMaxAbsolute()
	require.NoError(t, p.Init(slice(0.1, 0.2, 0.3, -0.4, 0.5), 3))

	got := drain(t, p, 3)
	assert.InDelta(t, 0.3, got[0].Max, 1e-6)
	assert.InDelta(t, 0.5, got[1].Max, 1e-6)
	assert.InDelta(t, -0.4, got[1].Min, 1e-6)
	assert.Equal(t, Peak{}, got[2])
}

func TestProviders_ExhaustedSourceReturnsSilence(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := New(name, WithBlockSize(2))
			require.NoError(t, err)
			require.NoError(t, p.Init(slice(0.5, -0.5), 2))

			_, err = p.NextPeak()
			require.NoError(t, err)

			for _, pk := range drain(t, p, 3) {
				assert.Equal(t, Peak{}, pk)
			}
		})
	}
}

func TestProviders_ChunkedReadsFillBucket(t *testing.T) {
	t.Parallel()

	src := slice(0.1, 0.9, -0.7, 0.2, 0.3, 0.4).WithChunk(1)

	p := NewMaxAbsolute()
	require.NoError(t, p.Init(src, 3))

	got := drain(t, p, 2)
	assert.InDelta(t, 0.9, got[0].Max, 1e-6)
	assert.InDelta(t, -0.7, got[0].Min, 1e-6)
	assert.InDelta(t, 0.4, got[1].Max, 1e-6)
}

func TestProviders_InitRejectsBadBucket(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		p, err := New(name)
		require.NoError(t, err)

		assert.ErrorIs(t, p.Init(slice(0.1), 0), ErrInvalidConfiguration, name)
		assert.ErrorIs(t, p.Init(nil, 4), ErrInvalidConfiguration, name)
	}
}

func TestProviders_NextPeakBeforeInit(t *testing.T) {
	t.Parallel()

	_, err := NewMaxAbsolute().NextPeak()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestProviders_ReadErrorPropagates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5).FailAfter(10)

	p := NewRMS(4)
	require.NoError(t, p.Init(src, 8))

	_, err := p.NextPeak()
	require.NoError(t, err)

	_, err = p.NextPeak()
	assert.ErrorIs(t, err, audiotest.ErrMockRead)
}

func TestProviders_InitResets(t *testing.T) {
	t.Parallel()

	p := NewMaxAbsolute()
	require.NoError(t, p.Init(slice(0.5), 4))
	drain(t, p, 2)

	require.NoError(t, p.Init(slice(0.25, -0.75), 4))
	got := drain(t, p, 1)
	assert.InDelta(t, 0.25, got[0].Max, 1e-6)
	assert.InDelta(t, -0.75, got[0].Min, 1e-6)
}

func TestRMS_SmoothsTransients(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 100)
	samples[50] = 1

	p := NewRMS(100)
	require.NoError(t, p.Init(slice(samples...), 100))

	pk, err := p.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 0.1, pk.Max, 1e-9)
	assert.InDelta(t, -0.1, pk.Min, 1e-9)
}

func TestRMS_LoudestSubBlock(t *testing.T) {
	t.Parallel()

	// Two sub-blocks: RMS 0.2 and RMS 0.6.
	p := NewRMS(2)
	require.NoError(t, p.Init(slice(0.2, -0.2, 0.6, -0.6), 4))

	pk, err := p.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, pk.Max, 1e-6)
	assert.InDelta(t, -0.6, pk.Min, 1e-6)
}

func TestRMS_PartialSubBlock(t *testing.T) {
	t.Parallel()

	p := NewRMS(4)
	require.NoError(t, p.Init(slice(0.1, 0.1, 0.1, 0.1, 0.8), 5))

	pk, err := p.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 0.8, pk.Max, 1e-6)
}

func TestSampling_Stride(t *testing.T) {
	t.Parallel()

	// Only indexes 0, 3 and 6 are inspected.
	p := NewSampling(3)
	require.NoError(t, p.Init(slice(0.1, 0.9, -0.9, 0.4, 0.9, -0.9, -0.2, 1, -1), 9))

	pk, err := p.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, pk.Max, 1e-6)
	assert.InDelta(t, -0.2, pk.Min, 1e-6)

	next, err := p.NextPeak()
	require.NoError(t, err)
	assert.Equal(t, Peak{}, next)
}

func TestScaledAverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scale   float64
		samples []float32
		want    float64
	}{
		{"scaled", 4, []float32{0.1, -0.1, 0.1, -0.1}, 0.4},
		{"clamped", 4, []float32{0.5, -0.5}, 1},
		{"silence", 4, []float32{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewScaledAverage(tt.scale)
			require.NoError(t, p.Init(slice(tt.samples...), len(tt.samples)))

			pk, err := p.NextPeak()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, pk.Max, 1e-6)
			assert.InDelta(t, -tt.want, pk.Min, 1e-6)
		})
	}
}

func TestDecibel_Mapping(t *testing.T) {
	t.Parallel()

	d := NewDecibel(nil, 0)

	assert.InDelta(t, 1.0, d.scale(1.0), 1e-12)
	assert.InDelta(t, -1.0, d.scale(-1.0), 1e-12)
	assert.Zero(t, d.scale(0))
	assert.InDelta(t, 0.0, d.scale(math.Pow(10, -48.0/20)), 1e-9)
	assert.Zero(t, d.scale(1e-6))
	assert.InDelta(t, 0.5, d.scale(math.Pow(10, -24.0/20)), 1e-9)
	assert.InDelta(t, -0.5, d.scale(-math.Pow(10, -24.0/20)), 1e-9)
}

func TestDecibel_Monotonic(t *testing.T) {
	t.Parallel()

	d := NewDecibel(nil, DefaultDynamicRange)

	prev := d.scale(0)
	for i := 1; i <= 1000; i++ {
		cur := d.scale(float64(i) / 1000)
		assert.GreaterOrEqual(t, cur, prev, "amplitude %d/1000", i)
		prev = cur
	}
}

func TestDecibel_WrapsProvider(t *testing.T) {
	t.Parallel()

	d := NewDecibel(NewMaxAbsolute(), 0)
	require.NoError(t, d.Init(slice(1, -0.5), 2))

	pk, err := d.NextPeak()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, pk.Max, 1e-9)
	assert.InDelta(t, -(48+20*math.Log10(0.5))/48, pk.Min, 1e-9)
}

func TestDecibel_NilInner(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewDecibel(nil, 0).Init(slice(1), 1), ErrInvalidConfiguration)
}

func TestNew_Names(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want any
	}{
		{"max-absolute", &MaxAbsolute{}},
		{"RMS", &RMS{}},
		{"sampling", &Sampling{}},
		{"Scaled-Average", &ScaledAverage{}},
		{"Max Absolute Value", &MaxAbsolute{}},
		{"Max Rms Value", &RMS{}},
		{"Sampled Peaks", &Sampling{}},
		{"Scaled Average", &ScaledAverage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := New(tt.name)
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	p, err := New(StrategyRMS, WithBlockSize(32))
	require.NoError(t, err)
	assert.Equal(t, 32, p.(*RMS).blockSize)

	p, err = New(StrategySampling)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockSize, p.(*Sampling).blockSize)

	p, err = New(StrategyScaledAverage, WithScale(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.(*ScaledAverage).scale, 0)
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{"Nonexistent", nil},
		{"", nil},
		{StrategyRMS, []Option{WithBlockSize(0)}},
		{StrategySampling, []Option{WithBlockSize(-1)}},
		{StrategyScaledAverage, []Option{WithScale(0)}},
	}

	for _, tt := range tests {
		p, err := New(tt.name, tt.opts...)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, tt.name)
		assert.Nil(t, p)
	}
}

func BenchmarkMaxAbsolute(b *testing.B) {
	benchmarkProvider(b, func() Provider { return NewMaxAbsolute() })
}

func BenchmarkRMS(b *testing.B) {
	benchmarkProvider(b, func() Provider { return NewRMS(DefaultBlockSize) })
}

func benchmarkProvider(b *testing.B, mk func() Provider) {
	b.ReportAllocs()

	for b.Loop() {
		src := audiotest.NewSineSource(44100, 1, 44100, 440)
		p := mk()
		if err := p.Init(src, 441); err != nil {
			b.Fatal(err)
		}
		for range 100 {
			if _, err := p.NextPeak(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
