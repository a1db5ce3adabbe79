package gradient

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultConfigPath is read when the Config style is used without a path.
const DefaultConfigPath = "colors.csv"

// ParseError reports a malformed line of a color file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Colors resolves a style to its anchor colors. diag receives the
// human-readable notes a user needs to reproduce the result.
func Colors(s Style, path string, diag io.Writer) ([Anchors]color.RGBA, error) {
	switch s {
	case Config:
		if path == "" {
			path = DefaultConfigPath
		}
		fmt.Fprintf(diag, "config file: '%s'\n", path)

		return FromFile(path)
	case Random:
		return RandomColors(rand.Reader, diag)
	}

	p, ok := Palette(s)
	if !ok {
		return p, fmt.Errorf("no palette for color style %v", s)
	}
	return p, nil
}

// FromFile reads anchor colors from a color file. See Parse.
func FromFile(path string) ([Anchors]color.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return [Anchors]color.RGBA{}, fmt.Errorf("reading colors: %w", err)
	}
	defer f.Close()

	colors, err := Parse(f)
	if err != nil {
		return colors, fmt.Errorf("parsing colors from %s: %w", path, err)
	}
	return colors, nil
}

// Parse reads a color file: a header line followed by exactly three lines of
// comma-separated 8-bit components "R,G,B". Missing components are 0.
// Blank lines are ignored.
func Parse(r io.Reader) ([Anchors]color.RGBA, error) {
	var colors [Anchors]color.RGBA

	scanner := bufio.NewScanner(r)

	n := 0
	line := 0
	header := true
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if header {
			header = false
			continue
		}

		if n == Anchors {
			return colors, fmt.Errorf("%w: more than %d colors", ErrAnchors, Anchors)
		}

		c, err := parseColor(text)
		if err != nil {
			return colors, &ParseError{Line: line, Text: text, Err: err}
		}
		colors[n] = c
		n++
	}
	if err := scanner.Err(); err != nil {
		return colors, err
	}

	if n != Anchors {
		return colors, fmt.Errorf("%w: got %d, need %d", ErrAnchors, n, Anchors)
	}

	return colors, nil
}

func parseColor(s string) (color.RGBA, error) {
	var components [3]uint8

	fields := strings.SplitN(s, ",", 4)
	for i := range components {
		if i >= len(fields) {
			break
		}

		v, err := strconv.ParseUint(strings.TrimSpace(fields[i]), 10, 8)
		if err != nil {
			return color.RGBA{}, err
		}
		components[i] = uint8(v)
	}

	return rgba(components[0], components[1], components[2]), nil
}

// RandomColors draws three colors from r and writes them to diag as a color
// file, so the result can be reproduced with the Config style.
func RandomColors(r io.Reader, diag io.Writer) ([Anchors]color.RGBA, error) {
	var colors [Anchors]color.RGBA

	var data [Anchors * 3]byte
	if _, err := io.ReadFull(r, data[:]); err != nil {
		return colors, fmt.Errorf("getting random colors: %w", err)
	}

	fmt.Fprintln(diag, "R,G,B")
	for i := range colors {
		colors[i] = rgba(data[3*i], data[3*i+1], data[3*i+2])
		fmt.Fprintf(diag, "%d,%d,%d\n", data[3*i], data[3*i+1], data[3*i+2])
	}

	return colors, nil
}
