package postprocess

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/juliafatou/pkg/render"
)

// ErrFormat is returned for output paths without a supported extension.
var ErrFormat = errors.New("unsupported image format")

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

// Extensions lists the supported output file extensions.
func Extensions() []string {
	exts := make([]string, 0, len(encoders))
	for ext := range encoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

// Image wraps an RGB buffer as an opaque RGBA image.
func Image(pixels []byte, bounds render.Bounds) (*image.RGBA, error) {
	if len(pixels) != bounds.Len() {
		return nil, fmt.Errorf("buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Len())
	}

	img := image.NewRGBA(image.Rect(0, 0, bounds.Width, bounds.Height))
	for i, j := 0, 0; i < len(pixels); i, j = i+render.BytesPerPixel, j+4 {
		img.Pix[j] = pixels[i]
		img.Pix[j+1] = pixels[i+1]
		img.Pix[j+2] = pixels[i+2]
		img.Pix[j+3] = 0xff
	}

	return img, nil
}

// Supported returns an error unless path has an extension Save can encode.
func Supported(path string) error {
	_, err := encoderFor(path)
	return err
}

func encoderFor(path string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))

	encode, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	return encode, nil
}

// Save writes img to path, choosing the encoding by the file extension.
func Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return f.Close()
}

// BlurImage blurs an RGB buffer and writes it to path.
func BlurImage(path string, pixels []byte, bounds render.Bounds, sigma float64) error {
	blurred, err := Blur(pixels, bounds, sigma)
	if err != nil {
		return err
	}

	img, err := Image(blurred, bounds)
	if err != nil {
		return err
	}

	return Save(path, img)
}
