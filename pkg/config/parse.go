package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a malformed command-line value.
type ParseError struct {
	What  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %s %q: %v", e.What, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParsePair splits s at the first sep and parses both halves.
func ParsePair[T any](s string, sep string, parse func(string) (T, error)) (T, T, error) {
	var zero T

	left, right, found := strings.Cut(s, sep)
	if !found {
		return zero, zero, fmt.Errorf("missing separator %q", sep)
	}

	l, err := parse(left)
	if err != nil {
		return zero, zero, err
	}
	r, err := parse(right)
	if err != nil {
		return zero, zero, err
	}

	return l, r, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseSize(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ParseComplex parses a complex number written "re,im".
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair(s, ",", parseFloat)
	if err != nil {
		return 0, &ParseError{What: "complex number", Value: s, Err: err}
	}
	return complex(re, im), nil
}

// ParseDimensions parses image dimensions written "WIDTHxHEIGHT".
// Both must be positive.
func ParseDimensions(s string) (width, height int, err error) {
	width, height, err = ParsePair(s, "x", parseSize)
	if err == nil && (width == 0 || height == 0) {
		err = fmt.Errorf("dimensions must be positive")
	}
	if err != nil {
		return 0, 0, &ParseError{What: "image dimensions", Value: s, Err: err}
	}
	return width, height, nil
}

// ParseOffset parses a view offset written "X:Y".
func ParseOffset(s string) (x, y float64, err error) {
	x, y, err = ParsePair(s, ":", parseFloat)
	if err != nil {
		return 0, 0, &ParseError{What: "offset", Value: s, Err: err}
	}
	return x, y, nil
}
