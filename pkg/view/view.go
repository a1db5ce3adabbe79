// Package view maps pixel locations of the global image onto the complex plane.
package view

// Scale is the size of one pixel in the complex plane, per axis.
// X scales rows and Y scales columns.
type Scale struct {
	X, Y float64
}

// Offset shifts the image in the complex plane.
//
// Z is half the requested view scale so that a zero user offset centers the
// image. X additionally absorbs the aspect-ratio correction so non-square
// images are not stretched.
type Offset struct {
	X, Y, Z float64
}

// Params is the immutable viewport of a single render.
type Params struct {
	Scale  Scale
	Offset Offset
}

// New returns the viewport for a width x height image showing a region scale
// units tall, shifted by (offX, offY).
func New(width, height int, scale, offX, offY float64) Params {
	// One scale for both axes avoids distortion.
	s := scale / float64(height)
	ratio := float64(width) / float64(height)

	half := scale / 2.0

	return Params{
		Scale:  Scale{X: s, Y: s},
		Offset: Offset{X: (offX - half) + half*ratio, Y: offY, Z: half},
	}
}

// Map returns the point in the complex plane for the pixel at (row, column)
// of the global image.
func (p Params) Map(row, column int) complex128 {
	cx := float64(float64(column)*p.Scale.Y) - (p.Offset.Z + p.Offset.X)
	cy := float64(float64(row)*p.Scale.X) - (p.Offset.Z + p.Offset.Y)

	return complex(cx, cy)
}
