// Package blend mixes the escape values of two slightly offset Julia sets.
package blend

import (
	"errors"

	"github.com/willbeason/juliafatou/pkg/escape"
	"github.com/willbeason/juliafatou/pkg/transforms"
)

var (
	// ErrSingularFactor is returned for a blend factor of -1, where the
	// weighted mean divides by zero.
	ErrSingularFactor = errors.New("blend factor must not be -1")

	// ErrZeroPower is returned for an exponent of 0.
	ErrZeroPower = errors.New("power must be at least 1")
)

// Params describe the pair of Julia sets and how they are mixed.
type Params struct {
	// C is the constant of the primary set.
	C complex128
	// Diverge is how far the secondary constant is moved away from C.
	Diverge float64
	// Factor weighs the secondary set. Zero renders the primary set alone
	// and negative values subtract the secondary set.
	Factor float64
	// Power is the exponent of z in z^Power + c.
	Power uint32
	// Inverse mirrors the blended value on the 0-255 display scale.
	Inverse bool
}

func (p Params) Validate() error {
	if p.Factor == -1.0 {
		return ErrSingularFactor
	}
	if p.Power == 0 {
		return ErrZeroPower
	}
	return nil
}

// Diverged returns c and the constant of the secondary set.
func Diverged(c complex128, diverge float64) (primary, secondary complex128) {
	return c, complex(real(c)+diverge, imag(c)-diverge)
}

// Sets returns the primary and secondary maps.
func (p Params) Sets() (primary, secondary transforms.JuliaN) {
	a, b := Diverged(p.C, p.Diverge)
	return transforms.JuliaN{N: p.Power, C: a}, transforms.JuliaN{N: p.Power, C: b}
}

// Intensity is the blended escape value of z0. Points which never escape
// count as 0.
func (p Params) Intensity(z0 complex128) float64 {
	primary, secondary := p.Sets()

	a := escape.Evaluate(z0, primary).Or(0.0)
	b := escape.Evaluate(z0, secondary).Or(0.0)

	return p.Mix(a, b)
}

// Mix blends the primary value a with the secondary value b.
func (p Params) Mix(a, b float64) float64 {
	x := (a + float64(b*p.Factor)) / (1.0 + p.Factor)

	if p.Inverse {
		x = 255.0 - x
	}

	return x
}
