// Package color provides the small set of colour conversions the template
// catalogue and driver generator need: hex parsing for CSS-style values and
// linear interpolation for colour-ramp effects.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// HexToRGB parses a "#rrggbb" (or bare "rrggbb") string into its three
// byte components. It reports ok=false for anything that isn't exactly six
// ASCII hex digits, matching the reference implementation's ASCII guard
// (a non-ASCII hex string would otherwise panic a byte-offset slice).
func HexToRGB(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 || !isASCII(hex) {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// HexToRGBString renders a hex colour as a CSS rgb()/rgba() string. Alpha
// is omitted when nil. Unparseable input is returned unchanged, matching
// the reference behaviour of falling back to the original string.
func HexToRGBString(hex string, alpha *float32) string {
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return hex
	}
	if alpha != nil {
		return fmt.Sprintf("rgba(%d, %d, %d, %v)", r, g, b, *alpha)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// LinearTransform maps value from the [inMin, inMax] range onto [outMin,
// outMax]. It returns NaN when the input range has zero width, the same
// guard the reference implementation applies.
func LinearTransform(value, inMin, inMax, outMin, outMax float64) float64 {
	if math.Abs(inMax-inMin) < 1e-9 {
		return math.NaN()
	}
	return (value-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
