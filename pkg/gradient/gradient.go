// Package gradient turns scalar intensities into colors.
//
// A Gradient spreads three anchor colors evenly over the domain [0, 255] and
// interpolates between them in RGB space. Values outside the domain are either
// clamped (At) or mirrored back into it (ReflectAt), which yields a continuous
// cyclic ramp.
package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

const (
	// Anchors is the number of colors a Gradient is built from.
	Anchors = 3

	// DomainMax is the upper end of the gradient's domain. The domain starts at 0.
	DomainMax = 255.0
)

// ErrAnchors is returned when a gradient is built from the wrong number of colors.
var ErrAnchors = errors.New("wrong number of gradient colors")

// ExtendMode defines how the gradient extends beyond its domain.
type ExtendMode int

const (
	// ExtendPad extends the edge colors.
	ExtendPad ExtendMode = iota
	// ExtendReflect mirrors the gradient.
	ExtendReflect
)

// rgb is a color with components in [0, 1].
type rgb struct {
	R, G, B float64
}

// Gradient is immutable once built and safe for concurrent use.
type Gradient struct {
	stops [Anchors]rgb
}

// New builds a gradient from exactly three anchor colors, ordered from the
// start of the domain to its end. Alpha is ignored.
func New(colors ...color.RGBA) (*Gradient, error) {
	if len(colors) != Anchors {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrAnchors, len(colors), Anchors)
	}

	g := &Gradient{}
	for i, c := range colors {
		g.stops[i] = rgb{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}
	}

	return g, nil
}

// At returns the color at x, clamping x to the domain.
func (g *Gradient) At(x float64) color.RGBA {
	return g.sample(x/DomainMax, ExtendPad)
}

// ReflectAt returns the color at x, mirroring x back into the domain.
// ReflectAt(x) == ReflectAt(-x) == ReflectAt(2*DomainMax - x).
func (g *Gradient) ReflectAt(x float64) color.RGBA {
	return g.sample(x/DomainMax, ExtendReflect)
}

// sample returns the color at the normalized position t.
func (g *Gradient) sample(t float64, mode ExtendMode) color.RGBA {
	t = applyExtendMode(t, mode)

	// The anchors sit at 0, 0.5 and 1.
	segments := float64(Anchors - 1)
	pos := t * segments

	i := int(pos)
	if i >= Anchors-1 {
		i = Anchors - 2
	}
	if i < 0 {
		i = 0
	}

	local := pos - float64(i)
	c := lerp(g.stops[i], g.stops[i+1], local)

	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

// applyExtendMode maps t onto [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendReflect:
		t = math.Mod(1.0+t, 2.0)
		if t < 0 {
			t += 2.0
		}
		t = math.Abs(t - 1.0)
	default:
		t = clamp01(t)
	}

	// NaN and infinite inputs have no meaningful position.
	if math.IsNaN(t) {
		return 0
	}

	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func lerp(a, b rgb, t float64) rgb {
	return rgb{
		R: a.R + t*(b.R-a.R),
		G: a.G + t*(b.G-a.G),
		B: a.B + t*(b.B-a.B),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}
