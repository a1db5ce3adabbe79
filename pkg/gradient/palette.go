package gradient

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/spf13/pflag"
)

// Style selects where the anchor colors of a gradient come from.
type Style int

const (
	Bookworm Style = iota
	Jellyfish
	Ten
	Eleven
	Mint
	Greyscale
	Christmas
	Chameleon
	Plasma
	Plasma2
	// Config reads the colors from a file.
	Config
	// Random draws the colors from a cryptographic random source.
	Random
)

var styleNames = [...]string{
	Bookworm:  "bookworm",
	Jellyfish: "jellyfish",
	Ten:       "ten",
	Eleven:    "eleven",
	Mint:      "mint",
	Greyscale: "greyscale",
	Christmas: "christmas",
	Chameleon: "chameleon",
	Plasma:    "plasma",
	Plasma2:   "plasma2",
	Config:    "config",
	Random:    "random",
}

var palettes = map[Style][Anchors]color.RGBA{
	Bookworm:  {rgba(5, 71, 92), rgba(10, 120, 115), rgba(184, 216, 215)},
	Jellyfish: {rgba(38, 0, 24), rgba(90, 25, 63), rgba(198, 70, 72)},
	Ten:       {rgba(4, 62, 185), rgba(2, 123, 230), rgba(105, 254, 255)},
	Eleven:    {rgba(2, 70, 217), rgba(1, 214, 244), rgba(209, 229, 254)},
	Mint:      {rgba(21, 21, 21), rgba(137, 184, 70), rgba(214, 214, 214)},
	Greyscale: {rgba(255, 255, 255), rgba(127, 127, 127), rgba(0, 0, 0)},
	Christmas: {rgba(31, 56, 35), rgba(209, 27, 79), rgba(250, 219, 82)},
	Chameleon: {rgba(11, 127, 109), rgba(35, 145, 108), rgba(21, 155, 110)},
	Plasma:    {rgba(35, 37, 83), rgba(36, 102, 156), rgba(219, 135, 75)},
	Plasma2:   {rgba(0, 87, 139), rgba(0, 147, 235), rgba(249, 249, 249)},
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Styles lists the names of all styles.
func Styles() []string {
	return append([]string(nil), styleNames[:]...)
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// Set implements pflag.Value.
func (s *Style) Set(name string) error {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			*s = Style(i)
			return nil
		}
	}
	return fmt.Errorf("unknown color style %q, want one of %s", name, strings.Join(styleNames[:], ", "))
}

// Type implements pflag.Value.
func (s *Style) Type() string {
	return "style"
}

var _ pflag.Value = new(Style)

// Palette returns the built-in anchor colors of a named style.
// Config and Random have no built-in palette.
func Palette(s Style) ([Anchors]color.RGBA, bool) {
	p, ok := palettes[s]
	return p, ok
}
