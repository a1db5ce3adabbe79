// Package postprocess blurs finished renders and writes them to image files.
package postprocess

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/juliafatou/pkg/render"
)

// ErrSigma is returned for a blur sigma that is NaN or infinite.
var ErrSigma = errors.New("blur sigma must be finite")

// ValidSigma reports whether sigma can be used for blurring.
func ValidSigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: got %v", ErrSigma, sigma)
	}
	return nil
}

// Kernel returns the normalized one-dimensional Gaussian weights for sigma,
// reaching two standard deviations to either side of the center but no more
// than maxRadius. Past the edge of an image the weights would only resample
// edge pixels again.
func Kernel(sigma float64, maxRadius int) []float64 {
	radius := maxRadius
	if r := math.Ceil(2.0 * sigma); r < float64(maxRadius) {
		radius = int(r)
	}
	weights := make([]float64, 2*radius+1)

	sum := 0.0
	for i := range weights {
		d := float64(i - radius)
		w := math.Exp(-d * d / (2.0 * sigma * sigma))
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}

	return weights
}

// Blur returns a Gaussian-blurred copy of an RGB buffer. Pixels past the
// edges repeat the edge pixel. A non-positive sigma returns an unmodified copy;
// NaN and infinite sigmas are rejected.
func Blur(pixels []byte, bounds render.Bounds, sigma float64) ([]byte, error) {
	if len(pixels) != bounds.Len() {
		return nil, fmt.Errorf("buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Len())
	}

	if err := ValidSigma(sigma); err != nil {
		return nil, err
	}

	out := make([]byte, len(pixels))
	if sigma <= 0 || len(pixels) == 0 {
		copy(out, pixels)
		return out, nil
	}

	kernel := Kernel(sigma, max(bounds.Width, bounds.Height))
	radius := len(kernel) / 2
	stride := bounds.Width * render.BytesPerPixel
	bands := render.Bands(bounds.Width, bounds.Height, runtime.NumCPU())

	// Horizontal pass into tmp, then vertical pass from tmp into out. Each
	// band only writes its own rows.
	tmp := make([]float64, len(pixels))

	err := forBands(bands, func(b render.Band) {
		for y := b.Top; y < b.Top+b.Height; y++ {
			row := pixels[y*stride : (y+1)*stride]
			for x := 0; x < bounds.Width; x++ {
				for c := 0; c < render.BytesPerPixel; c++ {
					sum := 0.0
					for k, w := range kernel {
						sx := clamp(x+k-radius, bounds.Width-1)
						sum += w * float64(row[sx*render.BytesPerPixel+c])
					}
					tmp[y*stride+x*render.BytesPerPixel+c] = sum
				}
			}
		}
	})
	if err != nil {
		return nil, err
	}

	err = forBands(bands, func(b render.Band) {
		for y := b.Top; y < b.Top+b.Height; y++ {
			for i := 0; i < stride; i++ {
				sum := 0.0
				for k, w := range kernel {
					sy := clamp(y+k-radius, bounds.Height-1)
					sum += w * tmp[sy*stride+i]
				}
				out[y*stride+i] = to8(sum)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// forBands runs fn once per band concurrently and waits for all of them.
func forBands(bands []render.Band, fn func(render.Band)) error {
	var g errgroup.Group
	for _, b := range bands {
		b := b
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("blurring rows %d-%d: %v", b.Top, b.Top+b.Height-1, r)
				}
			}()

			fn(b)
			return nil
		})
	}
	return g.Wait()
}

func clamp(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}

func to8(v float64) byte {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
