package render

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// ErrThreads is returned for a non-positive number of workers.
var ErrThreads = errors.New("number of threads must be positive")

// WorkerPanicError is returned when rendering a band panicked. The contents
// of the whole buffer are undefined afterwards.
type WorkerPanicError struct {
	Band  Band
	Value any
	Stack []byte
}

func (e *WorkerPanicError) Error() string {
	return fmt.Sprintf("rendering rows %d-%d panicked: %v",
		e.Band.Top, e.Band.Top+e.Band.Height-1, e.Value)
}

// Threads returns n, or the number of available CPUs if n is 0.
func Threads(n int) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	return n
}

// Scheduler renders an image with one goroutine per band.
type Scheduler struct {
	Threads int

	// render draws one band. Tests replace it.
	render func(pixels []byte, bounds Bounds, upperLeft image.Point, f Frame)
}

// NewScheduler returns a Scheduler using threads workers, or one per CPU if
// threads is 0.
func NewScheduler(threads int) *Scheduler {
	return &Scheduler{Threads: Threads(threads)}
}

// Run renders the full image into pixels. It returns once every band has been
// written, or with an error if any worker failed, in which case pixels must
// not be used.
func (s *Scheduler) Run(pixels []byte, bounds Bounds, f Frame) error {
	if s.Threads < 1 {
		return fmt.Errorf("%w: got %d", ErrThreads, s.Threads)
	}
	if len(pixels) != bounds.Len() {
		return fmt.Errorf("buffer holds %d bytes, bounds %dx%d need %d",
			len(pixels), bounds.Width, bounds.Height, bounds.Len())
	}

	draw := s.render
	if draw == nil {
		draw = Render
	}

	var g errgroup.Group
	for _, b := range Bands(bounds.Width, bounds.Height, s.Threads) {
		b := b
		start, end := b.Span()
		band := pixels[start:end:end]

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerPanicError{Band: b, Value: r, Stack: debug.Stack()}
				}
			}()

			draw(band, Bounds{Width: b.Width, Height: b.Height}, image.Pt(0, b.Top), f)
			return nil
		})
	}

	return g.Wait()
}
