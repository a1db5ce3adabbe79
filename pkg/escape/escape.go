// Package escape computes smoothed escape times of iterated complex maps.
package escape

import (
	"math"

	"github.com/willbeason/juliafatou/pkg/transforms"
)

const (
	// Limit is the fixed iteration cap. It is intentionally not tunable.
	Limit = 1024

	// Threshold is the squared modulus past which a point has escaped.
	Threshold = 5.0
)

// Result is the outcome of iterating one starting point.
// Escaped is false when the point never left the threshold within the limit.
type Result struct {
	Value   float64
	Escaped bool
}

// Or returns the escape value, or def if the point did not escape.
func (r Result) Or(def float64) float64 {
	if !r.Escaped {
		return def
	}
	return r.Value
}

// Evaluate iterates z0 under t for at most Limit iterations.
func Evaluate[T transforms.Transform](z0 complex128, t T) Result {
	v, ok := Time(z0, t, Limit)
	return Result{Value: v, Escaped: ok}
}

// Time iterates z0 under t for at most limit iterations and returns the
// smoothed escape value. ok is false if the point did not escape.
func Time[T transforms.Transform](z0 complex128, t T, limit int) (value float64, ok bool) {
	z := z0

	for i := 0; i < limit; i++ {
		if NormSqr(z) > Threshold {
			return Smooth(z, i), true
		}

		z = t.Next(z)
	}

	return 0.0, false
}

// Smooth is the continuous escape value for z escaping at iteration i.
func Smooth(z complex128, i int) float64 {
	return float64(i) + 2.0 - math.Log(math.Log(NormSqr(z)))/math.Ln2
}

// NormSqr is the squared modulus of z.
func NormSqr(z complex128) float64 {
	return float64(real(z)*real(z)) + float64(imag(z)*imag(z))
}
