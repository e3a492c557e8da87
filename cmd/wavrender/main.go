// SPDX-License-Identifier: EPL-2.0

// Command wavrender draws waveform images of audio files.
//
// Usage:
//
//	wavrender song.mp3                          # song.png next to the input
//	wavrender -style "SoundCloud Orange Blocks" -o out.png song.flac
//	wavrender -vector -strategy rms -db -o images/ *.wav
//	wavrender -list                             # show styles and strategies
//
// Several inputs are rendered concurrently, up to -workers at a time.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ik5/waveform"
	"github.com/ik5/waveform/peaks"
	"github.com/ik5/waveform/render"
	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"
)

type config struct {
	out      string
	style    string
	strategy string
	block    int
	scale    float64
	decibels bool
	vector   bool
	width    int
	top      int
	bottom   int
	ppp      int
	spacer   int
	topColor string
	botColor string
	bg       string
	bgImage  string
	workers  int
	verbose  bool
	list     bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config{}
	flag.StringVar(&cfg.out, "o", "", "Output file (single input) or directory")
	flag.StringVar(&cfg.style, "style", render.PresetStandard, "Rendering style, see -list")
	flag.StringVar(&cfg.strategy, "strategy", peaks.StrategyMaxAbsolute, "Peak strategy, see -list")
	flag.IntVar(&cfg.block, "block", peaks.DefaultBlockSize, "Block size for the rms and sampling strategies")
	flag.Float64Var(&cfg.scale, "scale", peaks.DefaultScale, "Gain for the scaled-average strategy")
	flag.BoolVar(&cfg.decibels, "db", false, "Use a decibel scale")
	flag.BoolVar(&cfg.vector, "vector", false, "Write SVG instead of PNG")
	flag.IntVar(&cfg.width, "width", render.DefaultWidth, "Image width in pixels")
	flag.IntVar(&cfg.top, "top", render.DefaultTopHeight, "Height above the center line")
	flag.IntVar(&cfg.bottom, "bottom", render.DefaultBottomHeight, "Height below the center line")
	flag.IntVar(&cfg.ppp, "ppp", 0, "Pixels per peak (0 keeps the style's value)")
	flag.IntVar(&cfg.spacer, "spacer", -1, "Spacer pixels (-1 keeps the style's value)")
	flag.StringVar(&cfg.topColor, "top-color", "", "Top peak color, #RRGGBB or #AARRGGBB")
	flag.StringVar(&cfg.botColor, "bottom-color", "", "Bottom peak color, #RRGGBB or #AARRGGBB")
	flag.StringVar(&cfg.bg, "bg", "", "Background color, #RRGGBB, #AARRGGBB or transparent")
	flag.StringVar(&cfg.bgImage, "bg-image", "", "Background image (PNG, JPEG or BMP), stretched to fit")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "Files rendered at the same time")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose output")
	flag.BoolVar(&cfg.list, "list", false, "List styles and strategies, then exit")
	flag.Parse()

	if cfg.list {
		printLists()
		return nil
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input...\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		return errors.New("no input files")
	}

	settings, err := buildSettings(cfg)
	if err != nil {
		return err
	}

	opts := waveform.Options{
		Strategy:    cfg.strategy,
		PeakOptions: []peaks.Option{peaks.WithBlockSize(cfg.block), peaks.WithScale(cfg.scale)},
		Settings:    settings,
	}

	// Fail on a bad strategy once instead of once per file.
	if _, err := peaks.New(opts.Strategy, opts.PeakOptions...); err != nil {
		return err
	}

	return renderAll(inputs, cfg, opts)
}

func printLists() {
	fmt.Println("Styles:")
	for _, name := range render.Presets() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println("Strategies:")
	for _, name := range peaks.Strategies() {
		fmt.Printf("  %s\n", name)
	}
}

// buildSettings starts from the chosen style and applies the flags on top.
func buildSettings(cfg config) (render.Settings, error) {
	s, err := render.Preset(cfg.style)
	if err != nil {
		return render.Settings{}, err
	}

	s.Width = cfg.width
	s.TopHeight = cfg.top
	s.BottomHeight = cfg.bottom
	s.DecibelScale = cfg.decibels

	if cfg.ppp > 0 {
		s.PixelsPerPeak = cfg.ppp
	}

	if cfg.spacer >= 0 {
		s.SpacerPixels = cfg.spacer
	}

	if cfg.vector {
		s.Output = render.VectorOutput
	}

	if cfg.topColor != "" {
		c, err := render.ParseColor(cfg.topColor)
		if err != nil {
			return render.Settings{}, fmt.Errorf("-top-color: %w", err)
		}
		s.TopPeakPen.Color = c
	}

	if cfg.botColor != "" {
		c, err := render.ParseColor(cfg.botColor)
		if err != nil {
			return render.Settings{}, fmt.Errorf("-bottom-color: %w", err)
		}
		s.BottomPeakPen.Color = c
	}

	if cfg.bg != "" {
		c, err := render.ParseColor(cfg.bg)
		if err != nil {
			return render.Settings{}, fmt.Errorf("-bg: %w", err)
		}
		s.Background = c
	}

	if cfg.bgImage != "" {
		img, err := loadImage(cfg.bgImage)
		if err != nil {
			return render.Settings{}, err
		}
		s.BackgroundImage = img
	}

	return s, s.Validate()
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening background image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding background image %s: %w", path, err)
	}

	return img, nil
}

// outputPath picks where the image for input goes. A single input may name
// the output file directly; otherwise out is a directory.
func outputPath(input, out string, single bool, kind render.OutputKind) string {
	ext := ".png"
	if kind == render.VectorOutput {
		ext = ".svg"
	}

	if single && out != "" && filepath.Ext(out) != "" {
		return out
	}

	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ext
	if out == "" {
		return filepath.Join(filepath.Dir(input), name)
	}

	return filepath.Join(out, name)
}

// renderAll renders every input, up to cfg.workers at a time. A failed file
// is logged and does not stop the others.
func renderAll(inputs []string, cfg config, opts waveform.Options) error {
	single := len(inputs) == 1

	var failed atomic.Int32

	var g errgroup.Group
	g.SetLimit(max(cfg.workers, 1))

	for _, input := range inputs {
		g.Go(func() error {
			dst := outputPath(input, cfg.out, single, opts.Settings.Output)
			if err := renderOne(input, dst, opts, cfg.verbose); err != nil {
				log.Printf("%s: %v", input, err)
				failed.Add(1)
			}

			return nil
		})
	}

	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(inputs))
	}

	return nil
}

func renderOne(input, dst string, opts waveform.Options, verbose bool) error {
	start := time.Now()

	img, err := waveform.RenderFile(input, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := img.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if verbose {
		log.Printf("%s -> %s (%s, %v)", input, dst, img.Kind(), time.Since(start).Round(time.Millisecond))
	}

	return nil
}
