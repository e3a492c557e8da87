// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/internal/audiotest"
)

// Example_monoMixer demonstrates converting stereo to mono.
func Example_monoMixer() {
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0) // 1 second stereo

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	fmt.Printf("Frames: %d\n", mono.Frames())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)
	fmt.Printf("Read %d mono samples\n", n)
	// Output:
	// Input channels: 2
	// Output channels: 1
	// Frames: 16000
	// Read 100 mono samples
}

// Example_readAll buffers a stream whose length is not known up front.
func Example_readAll() {
	source := audiotest.NewConstantSource(8000, 1, 8000, 0.5).WithReportedFrames(-1)
	fmt.Printf("Frames before buffering: %d\n", source.Frames())

	buf, err := audio.ReadAll(source, 4096)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Frames after buffering: %d\n", buf.Frames())
	fmt.Printf("Duration: %.2f seconds\n", float64(buf.Frames())/float64(buf.SampleRate()))
	// Output:
	// Frames before buffering: -1
	// Frames after buffering: 8000
	// Duration: 1.00 seconds
}

// mockDecoder is a simple decoder for testing the registry.
type mockDecoder struct{}

func (m mockDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	// File extensions work as keys.
	decoder, ok := registry.Get(".MOCK")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}

	fmt.Printf("Retrieved decoder: %T\n", decoder)

	_, ok = registry.Get("unknown")
	if !ok {
		fmt.Println("Unknown format not found in registry")
	}
	// Output:
	// Retrieved decoder: audio_test.mockDecoder
	// Unknown format not found in registry
}

// Example_multiChannel demonstrates multi-channel mixing.
func Example_multiChannel() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)

	fmt.Printf("Input: %d channels\n", source.Channels())

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Output: %d channel (mono)\n", mono.Channels())

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)
	if n > 0 {
		fmt.Printf("Output sample value: %.1f (average of 6 × 0.5)\n", buf[0])
	}
	// Output:
	// Input: 6 channels
	// Output: 1 channel (mono)
	// Output sample value: 0.5 (average of 6 × 0.5)
}
