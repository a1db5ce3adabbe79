package postprocess

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/willbeason/juliafatou/pkg/render"
)

func TestKernel(t *testing.T) {
	for _, sigma := range []float64{0.3, 1, 2.5} {
		k := Kernel(sigma, 100)

		if len(k)%2 != 1 {
			t.Errorf("sigma %v: even kernel length %d", sigma, len(k))
		}

		sum := 0.0
		for i, w := range k {
			sum += w
			if mirror := k[len(k)-1-i]; math.Abs(w-mirror) > 1e-15 {
				t.Errorf("sigma %v: kernel not symmetric at %d", sigma, i)
			}
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("sigma %v: weights sum to %v", sigma, sum)
		}
	}
}

func TestBlurZeroSigmaCopies(t *testing.T) {
	bounds := render.Bounds{Width: 3, Height: 2}
	pixels := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18,
	}

	for _, sigma := range []float64{0, -1} {
		got, err := Blur(pixels, bounds, sigma)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, pixels) {
			t.Errorf("sigma %v: got %v", sigma, got)
		}
		got[0] = 99
		if pixels[0] == 99 {
			t.Fatal("Blur returned the input buffer")
		}
	}
}

func TestBlurUniform(t *testing.T) {
	bounds := render.Bounds{Width: 17, Height: 9}
	pixels := bytes.Repeat([]byte{40, 128, 250}, bounds.Width*bounds.Height)

	got, err := Blur(pixels, bounds, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, pixels) {
		t.Error("blurring a uniform image changed it")
	}
}

func TestBlurSpreadsPoint(t *testing.T) {
	bounds := render.Bounds{Width: 9, Height: 9}
	pixels := make([]byte, bounds.Len())

	center := (4*bounds.Width + 4) * render.BytesPerPixel
	pixels[center] = 255

	got, err := Blur(pixels, bounds, 1)
	if err != nil {
		t.Fatal(err)
	}

	if got[center] == 0 || got[center] >= 255 {
		t.Errorf("center = %d, want dimmed", got[center])
	}
	if right := got[center+render.BytesPerPixel]; right == 0 || right > got[center] {
		t.Errorf("right neighbour = %d, center = %d", right, got[center])
	}
	if corner := got[0]; corner != 0 {
		t.Errorf("corner = %d, want 0", corner)
	}
	if green := got[center+1]; green != 0 {
		t.Errorf("channel leaked: green = %d", green)
	}
}

func TestBlurRejectsWrongLength(t *testing.T) {
	if _, err := Blur(make([]byte, 10), render.Bounds{Width: 2, Height: 2}, 1); err == nil {
		t.Error("expected error")
	}
}

func TestKernelRadiusIsCapped(t *testing.T) {
	tests := []struct {
		sigma     float64
		maxRadius int
		wantLen   int
	}{
		{1, 10, 5},
		{1e10, 4, 9},
		{1e200, 3, 7},
	}

	for _, tt := range tests {
		k := Kernel(tt.sigma, tt.maxRadius)
		if len(k) != tt.wantLen {
			t.Errorf("Kernel(%v, %d) has %d weights, want %d", tt.sigma, tt.maxRadius, len(k), tt.wantLen)
		}
		for i, w := range k {
			if math.IsNaN(w) || w <= 0 {
				t.Errorf("Kernel(%v, %d)[%d] = %v", tt.sigma, tt.maxRadius, i, w)
			}
		}
	}
}

func TestBlurSigma(t *testing.T) {
	bounds := render.Bounds{Width: 4, Height: 4}
	pixels := bytes.Repeat([]byte{10, 200, 90}, bounds.Width*bounds.Height)

	tests := []struct {
		name    string
		sigma   float64
		wantErr error
	}{
		{"NaN", math.NaN(), ErrSigma},
		{"+Inf", math.Inf(1), ErrSigma},
		{"-Inf", math.Inf(-1), ErrSigma},
		{"huge", 1e10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Blur(pixels, bounds, tt.sigma)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Blur(sigma %v) error = %v, want %v", tt.sigma, err, tt.wantErr)
			}
			if tt.wantErr == nil && !bytes.Equal(got, pixels) {
				t.Errorf("Blur(sigma %v) changed a uniform image", tt.sigma)
			}
		})
	}
}
