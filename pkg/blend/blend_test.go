package blend

import (
	"errors"
	"testing"

	"github.com/willbeason/juliafatou/pkg/escape"
	"github.com/willbeason/juliafatou/pkg/transforms"
	"github.com/willbeason/juliafatou/pkg/view"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"defaults", Params{C: complex(-0.4, 0.6), Diverge: 0.01, Factor: -0.25, Power: 2}, nil},
		{"zero factor", Params{Factor: 0, Power: 2}, nil},
		{"singular factor", Params{Factor: -1, Power: 2}, ErrSingularFactor},
		{"zero power", Params{Factor: 0.5, Power: 0}, ErrZeroPower},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDiverged(t *testing.T) {
	re, im, d := -0.4, 0.6, 0.25

	a, b := Diverged(complex(re, im), d)
	if a != complex(re, im) {
		t.Errorf("primary = %v", a)
	}
	if b != complex(re+d, im-d) {
		t.Errorf("secondary = %v", b)
	}
}

func TestZeroDivergeIgnoresFactor(t *testing.T) {
	v := view.New(64, 48, 3.0, 0, 0)

	for _, factor := range []float64{0, 0.5, -0.25, -0.9, 2, 17} {
		p := Params{C: complex(-0.4, 0.6), Diverge: 0, Factor: factor, Power: 2}

		for row := 0; row < 48; row += 5 {
			for column := 0; column < 64; column += 7 {
				z0 := v.Map(row, column)

				want := escape.Evaluate(z0, transforms.JuliaN{N: 2, C: p.C}).Or(0.0)
				got := p.Intensity(z0)
				if diff := got - want; diff > 1e-9 || diff < -1e-9 {
					t.Fatalf("factor %v at (%d, %d): got %v, want %v", factor, row, column, got, want)
				}
			}
		}
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		a, b   float64
		want   float64
	}{
		{"primary only", Params{Factor: 0}, 10, 99, 10},
		{"equal weight", Params{Factor: 1}, 10, 20, 15},
		{"subtractive", Params{Factor: -0.5}, 10, 4, 16},
		{"inverse", Params{Factor: 0, Inverse: true}, 10, 0, 245},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Mix(tt.a, tt.b); got != tt.want {
				t.Errorf("Mix(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
