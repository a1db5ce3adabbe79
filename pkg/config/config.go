// Package config turns command-line values into the immutable settings of a
// single render.
package config

import (
	"errors"
	"fmt"

	"github.com/willbeason/juliafatou/pkg/blend"
	"github.com/willbeason/juliafatou/pkg/gradient"
	"github.com/willbeason/juliafatou/pkg/postprocess"
	"github.com/willbeason/juliafatou/pkg/render"
	"github.com/willbeason/juliafatou/pkg/view"
)

// Flags are the raw command-line values.
type Flags struct {
	Dimensions  string
	Output      string
	ColorConfig string
	Offset      string
	Scale       float64
	Blur        float64
	Power       uint8
	Factor      float64
	Style       gradient.Style
	Diverge     float64
	Complex     string
	Intensity   float64
	Inverse     bool
	Threads     int
	TakeTime    bool
}

// Defaults returns the flag values used when none are given.
func Defaults() Flags {
	return Flags{
		Dimensions: "1200x1200",
		Output:     "output.png",
		Offset:     "0.0:0.0",
		Scale:      3.0,
		Blur:       1.0,
		Power:      2,
		Factor:     -0.25,
		Style:      gradient.Greyscale,
		Diverge:    0.01,
		Complex:    "-0.4,0.6",
		Intensity:  3.0,
	}
}

// Config is the validated configuration of one run. It is built once and
// only read afterwards.
type Config struct {
	Bounds render.Bounds
	Output string

	Style       gradient.Style
	ColorConfig string

	OffsetX, OffsetY float64
	Scale            float64
	Blur             float64

	Blend     blend.Params
	Intensity float64

	// Threads is the number of render workers, 0 for one per CPU.
	Threads  int
	TakeTime bool
}

// ErrNegativeThreads is returned for a negative thread count.
var ErrNegativeThreads = errors.New("number of threads must not be negative")

// New parses and validates f.
func New(f Flags) (Config, error) {
	width, height, err := ParseDimensions(f.Dimensions)
	if err != nil {
		return Config{}, err
	}

	offX, offY, err := ParseOffset(f.Offset)
	if err != nil {
		return Config{}, err
	}

	c, err := ParseComplex(f.Complex)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Bounds:      render.Bounds{Width: width, Height: height},
		Output:      f.Output,
		Style:       f.Style,
		ColorConfig: f.ColorConfig,
		OffsetX:     offX,
		OffsetY:     offY,
		Scale:       f.Scale,
		Blur:        f.Blur,
		Blend: blend.Params{
			C:       c,
			Diverge: f.Diverge,
			Factor:  f.Factor,
			Power:   uint32(f.Power),
			Inverse: f.Inverse,
		},
		Intensity: f.Intensity,
		Threads:   f.Threads,
		TakeTime:  f.TakeTime,
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Bounds.Width < 1 || c.Bounds.Height < 1 {
		return fmt.Errorf("image dimensions %dx%d must be positive", c.Bounds.Width, c.Bounds.Height)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeThreads, c.Threads)
	}
	if err := c.Blend.Validate(); err != nil {
		return fmt.Errorf("invalid fractal parameters: %w", err)
	}
	if err := postprocess.ValidSigma(c.Blur); err != nil {
		return err
	}
	if err := postprocess.Supported(c.Output); err != nil {
		return fmt.Errorf("output file %s: %w", c.Output, err)
	}
	return nil
}

// View is the viewport of the configured image.
func (c Config) View() view.Params {
	return view.New(c.Bounds.Width, c.Bounds.Height, c.Scale, c.OffsetX, c.OffsetY)
}
