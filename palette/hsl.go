package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	hueMax        = 360.0
	saturationMax = 100.0
	lightnessMax  = 100.0
)

// HexToHSL parses hex and returns hue in degrees, saturation and lightness in percent.
// Malformed input yields an *InvalidColorFormatError.
func HexToHSL(hex string) (h, s, l float64, err error) {
	c, err := ParseHex(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	h, s, l = c.HSL()
	return h, s, l, nil
}

// HSLToHex never fails: hue wraps modulo 360, saturation and lightness are clamped.
func HSLToHex(h, s, l float64) string {
	return HSLToColor(h, s, l).Hex()
}

// HSLToColor is HSLToHex without the string formatting
func HSLToColor(h, s, l float64) Color {
	h, s, l = NormalizeHSL(h, s, l)
	return fromColorful(colorful.Hsl(h, s/saturationMax, l/lightnessMax))
}

// NormalizeHSL returns the components HSLToColor actually converts: hue wrapped into
// [0,360), saturation and lightness clamped to [0,100]. NaN maps to 0 and infinite hues
// to 0.
func NormalizeHSL(h, s, l float64) (float64, float64, float64) {
	return wrapHue(h), clamp(s, 0, saturationMax), clamp(l, 0, lightnessMax)
}

// FormatHexValue normalizes user-entered text to #RRGGBB, returning fallback
// unchanged when the text is not a color.
func FormatHexValue(raw, fallback string) string {
	digits, err := normalizeHexDigits(raw)
	if err != nil {
		return fallback
	}
	return MustParseHex(digits).Hex()
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, hueMax)
	if h < 0 {
		h += hueMax
	}
	// -0.0 and values that round up to 360 after the addition
	if h >= hueMax || h == 0 {
		return 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
