package render

// A Band is a horizontal slice of the image rendered by a single worker.
type Band struct {
	// Top is the first row of the band in the global image.
	Top    int
	Height int
	Width  int
}

// Span is the byte range of the band within the full pixel buffer.
func (b Band) Span() (start, end int) {
	stride := b.Width * BytesPerPixel
	return b.Top * stride, (b.Top + b.Height) * stride
}

// RowsPerBand is the maximum height of a band when splitting height rows
// between threads workers. It overestimates by one so the last band takes the
// remainder.
func RowsPerBand(height, threads int) int {
	return height/threads + 1
}

// Bands splits an image into contiguous, non-overlapping bands covering every
// row exactly once. The last band may be shorter than the others. threads must
// be positive.
func Bands(width, height, threads int) []Band {
	rows := RowsPerBand(height, threads)

	bands := make([]Band, 0, height/rows+1)
	for top := 0; top < height; top += rows {
		h := rows
		if top+h > height {
			h = height - top
		}

		bands = append(bands, Band{Top: top, Height: h, Width: width})
	}

	return bands
}
