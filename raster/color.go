package raster

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("raster: invalid color")

// Transparent is the fully transparent color.
var Transparent color.Color = color.NRGBA{}

// ParseColor parses a color string.
// Supports formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA", SVG color names
// ("red", "cornflowerblue", ...) and the keywords "transparent" and "none".
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "transparent", "none":
		return Transparent, nil
	}
	if s[0] == '#' {
		c, ok := parseHexColor(s[1:])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error. It is meant for
// color literals in program text.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(hex string) (color.NRGBA, bool) {
	var r, g, b, a uint8 = 0, 0, 0, 255
	var ok bool
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		var v [4]uint8
		for i := 0; i < len(hex); i++ {
			d, good := hexDigit(hex[i])
			if !good {
				return color.NRGBA{}, false
			}
			v[i] = d * 17
		}
		r, g, b = v[0], v[1], v[2]
		if len(hex) == 4 {
			a = v[3]
		}
		ok = true
	case 6, 8: // RRGGBB, RRGGBBAA
		var v [4]uint8
		for i := 0; i < len(hex)/2; i++ {
			hi, good1 := hexDigit(hex[2*i])
			lo, good2 := hexDigit(hex[2*i+1])
			if !good1 || !good2 {
				return color.NRGBA{}, false
			}
			v[i] = hi<<4 | lo
		}
		r, g, b = v[0], v[1], v[2]
		if len(hex) == 8 {
			a = v[3]
		}
		ok = true
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, ok
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// isTransparent reports whether c has zero alpha.
func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
