// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives the waveform renderer
// consumes.
//
// This package contains:
//   - Source interface for decoded audio input
//   - MonoMixer for folding any channel layout into one track
//   - Buffer and ReadAll for holding a whole stream in memory
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Frames reports the total number of frames up front, which is what the
// renderer needs to size its time buckets. Decoders that cannot know the
// length (e.g. an MP3 read from a pipe) return -1; wrap those with ReadAll.
//
// # Channel Mixing
//
// Waveforms are always drawn from a single track. The MonoMixer averages
// interleaved channels:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Format Registry
//
// The registry maps format keys to decoders. Keys are case-insensitive and a
// leading dot is ignored, so a file extension can be used as is:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get(filepath.Ext(path))
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors
// indicate problems with the underlying decoder:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // process buf[:n] first
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
