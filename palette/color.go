// Package palette converts colors between hex and HSL, builds ten-step shade ramps
// from a base color and scores shade pairs for text contrast.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with 8-bit channels
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex returns the canonical uppercase #RRGGBB form
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBString formats the color as a CSS rgb() value
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// HSL returns hue in [0,360) degrees, saturation and lightness in [0,100] percent
func (c Color) HSL() (h, s, l float64) {
	h, s, l = c.colorful().Hsl()
	return h, s * 100, l * 100
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// ParseHex reads #RRGGBB, RRGGBB or the 3-digit shorthand in either case.
func ParseHex(s string) (Color, error) {
	digits, err := normalizeHexDigits(s)
	if err != nil {
		return Color{}, err
	}

	cc, err := colorful.Hex("#" + strings.ToLower(digits))
	if err != nil {
		return Color{}, &InvalidColorFormatError{Input: s, Reason: err.Error()}
	}
	return fromColorful(cc), nil
}

// MustParseHex is ParseHex for package-level constants; it panics on bad input
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeHexDigits strips whitespace and the leading '#', expands shorthand and
// returns the six hex digits.
func normalizeHexDigits(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	digits := strings.TrimPrefix(trimmed, "#")

	switch len(digits) {
	case 3:
		var b strings.Builder
		for _, ch := range digits {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		digits = b.String()
	case 6:
	default:
		return "", &InvalidColorFormatError{Input: s, Reason: fmt.Sprintf("expected 3 or 6 hex digits, got %d characters", len(digits))}
	}

	for _, ch := range digits {
		if !isHexDigit(ch) {
			return "", &InvalidColorFormatError{Input: s, Reason: fmt.Sprintf("non-hex character %q", ch)}
		}
	}
	return digits, nil
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
