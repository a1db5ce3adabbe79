package transforms

// A Transform iterates a passed point.
type Transform interface {
	Next(complex128) complex128
}
