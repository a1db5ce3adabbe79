// Package render rasterizes the blended Julia sets into RGB pixel buffers.
package render

import (
	"fmt"
	"image"

	"github.com/willbeason/juliafatou/pkg/blend"
	"github.com/willbeason/juliafatou/pkg/gradient"
	"github.com/willbeason/juliafatou/pkg/view"
)

// BytesPerPixel is the size of one RGB pixel in a buffer.
const BytesPerPixel = 3

// Bounds are the dimensions of a pixel buffer.
type Bounds struct {
	Width, Height int
}

// Len is the number of bytes a buffer with these bounds holds.
func (b Bounds) Len() int {
	return b.Width * b.Height * BytesPerPixel
}

// Frame holds everything every pixel of a render depends on. It is copied
// into each worker; Gradient is shared and never modified.
type Frame struct {
	View      view.Params
	Blend     blend.Params
	Gradient  *gradient.Gradient
	Intensity float64
}

// Render writes the pixels of the region of the global image starting at
// upperLeft with the given bounds. pixels is row-major RGB and must hold
// exactly bounds.Len() bytes.
func Render(pixels []byte, bounds Bounds, upperLeft image.Point, f Frame) {
	if len(pixels) != bounds.Len() {
		panic(fmt.Sprintf("render: buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Len()))
	}

	stride := bounds.Width * BytesPerPixel

	for row := 0; row < bounds.Height; row++ {
		line := pixels[row*stride : (row+1)*stride]

		for column := 0; column < bounds.Width; column++ {
			z0 := f.View.Map(row+upperLeft.Y, column+upperLeft.X)
			x := f.Blend.Intensity(z0)

			c := f.Gradient.ReflectAt(x * f.Intensity)

			p := line[column*BytesPerPixel : (column+1)*BytesPerPixel]
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
		}
	}
}
