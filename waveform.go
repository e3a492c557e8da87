// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/formats/aiff"
	"github.com/ik5/waveform/formats/flac"
	"github.com/ik5/waveform/formats/mp3"
	"github.com/ik5/waveform/formats/vorbis"
	"github.com/ik5/waveform/formats/wav"
	"github.com/ik5/waveform/peaks"
	"github.com/ik5/waveform/render"
)

// ErrUnsupportedFormat is returned when no decoder is registered for a format.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DefaultRegistry returns a registry with every bundled decoder. Keys are
// file extensions without the dot.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// Options controls a convenience render.
type Options struct {
	// Strategy is a peaks.New name. Empty selects max-absolute.
	Strategy string
	// PeakOptions tune the strategy (block size, scale).
	PeakOptions []peaks.Option
	// Settings describe the image. Start from render.Preset.
	Settings render.Settings
	// Registry resolves formats. Nil uses DefaultRegistry.
	Registry *audio.Registry
}

func (o Options) registry() *audio.Registry {
	if o.Registry != nil {
		return o.Registry
	}

	return DefaultRegistry()
}

func (o Options) provider() (peaks.Provider, error) {
	name := o.Strategy
	if name == "" {
		name = peaks.StrategyMaxAbsolute
	}

	return peaks.New(name, o.PeakOptions...)
}

// Render decodes r as format and draws it. Strategy and settings are
// checked before anything is read from r.
//
// Example:
//
//	s, _ := render.Preset(render.PresetStandard)
//	img, err := waveform.Render(file, "wav", waveform.Options{Settings: s})
//	if err != nil {
//	    return err
//	}
//	return img.Encode(out)
func Render(r io.Reader, format string, opts Options) (render.Image, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}

	provider, err := opts.provider()
	if err != nil {
		return nil, err
	}

	dec, ok := opts.registry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	return render.Render(src, provider, opts.Settings)
}

// RenderFile opens path and renders it, picking the decoder from the file
// extension.
func RenderFile(path string, opts Options) (render.Image, error) {
	format := filepath.Ext(path)
	if format == "" {
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Render(f, format, opts)
}
