package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/dyncanvas/geom"
)

// DefaultOrigin anchors a shape on the center of its bounding box.
const DefaultOrigin = "center center"

// ResolveOrigin parses an origin descriptor "<horizontal> <vertical>" and
// returns the anchor offset inside a width x height box.
//
// Tokens are anchor names (center, top, bottom, left, right; any case) or
// integers, which are used as literal offsets. Like parseInt, an integer
// token may carry trailing text ("12px" is 12). A single token leaves the
// other axis at center. top and bottom always set the vertical offset and
// left and right the horizontal one, whichever position they appear in;
// center applies to the axis of its position.
func ResolveOrigin(origin string, width, height float64) (geom.Vec, error) {
	tokens := strings.Fields(origin)
	switch len(tokens) {
	case 0:
		tokens = strings.Fields(DefaultOrigin)
	case 1:
		switch strings.ToLower(tokens[0]) {
		case "top", "bottom":
			tokens = []string{"center", tokens[0]}
		default:
			tokens = append(tokens, "center")
		}
	case 2:
	default:
		return geom.Vec{}, fmt.Errorf("%w: %q has more than two tokens", ErrInvalidOrigin, origin)
	}

	var off geom.Vec
	for axis, tok := range tokens {
		if n, ok := parseIntPrefix(tok); ok {
			if axis == 0 {
				off.X = float64(n)
			} else {
				off.Y = float64(n)
			}
			continue
		}
		switch strings.ToLower(tok) {
		case "center":
			if axis == 0 {
				off.X = width / 2
			} else {
				off.Y = height / 2
			}
		case "top":
			off.Y = 0
		case "bottom":
			off.Y = height
		case "left":
			off.X = 0
		case "right":
			off.X = width
		default:
			return geom.Vec{}, fmt.Errorf("%w: %q", ErrInvalidOrigin, tok)
		}
	}
	return off, nil
}

// parseIntPrefix reads an optionally signed run of decimal digits at the
// start of s.
func parseIntPrefix(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of range.
		return 0, false
	}
	return n, true
}
