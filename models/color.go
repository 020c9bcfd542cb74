package models

import (
	"fmt"
	"math"

	"github.com/color-game/palette-api/palette"
)

// ColorResponse describes a single color in every notation the API speaks
type ColorResponse struct {
	Hex ColorHex `json:"hex"`
	RGB ColorRGB `json:"rgb"`
	HSL ColorHSL `json:"hsl"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	Fraction Fraction `json:"fraction"`
	R        int      `json:"r"`
	G        int      `json:"g"`
	B        int      `json:"b"`
	Value    string   `json:"value"`
}

type Fraction struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type ColorHSL struct {
	Fraction FractionHSL `json:"fraction"`
	H        int         `json:"h"`
	S        int         `json:"s"`
	L        int         `json:"l"`
	Value    string      `json:"value"`
}

type FractionHSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NewColorResponse fills every notation from c
func NewColorResponse(c palette.Color) ColorResponse {
	h, s, l := c.HSL()
	hi, si, li := int(math.Round(h)), int(math.Round(s)), int(math.Round(l))
	if hi == 360 {
		hi = 0
	}
	hex := c.Hex()

	return ColorResponse{
		Hex: ColorHex{
			Value: hex,
			Clean: hex[1:],
		},
		RGB: ColorRGB{
			Fraction: Fraction{
				R: float64(c.R) / 255,
				G: float64(c.G) / 255,
				B: float64(c.B) / 255,
			},
			R:     int(c.R),
			G:     int(c.G),
			B:     int(c.B),
			Value: c.RGBString(),
		},
		HSL: ColorHSL{
			Fraction: FractionHSL{
				H: h / 360,
				S: s / 100,
				L: l / 100,
			},
			H:     hi,
			S:     si,
			L:     li,
			Value: fmt.Sprintf("hsl(%d, %d%%, %d%%)", hi, si, li),
		},
	}
}

// HSLToHexResponse is returned by the HSL conversion endpoint
type HSLToHexResponse struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Hex        string  `json:"hex"`
}

// FormatHexResponse reports the normalized value and whether the fallback was used
type FormatHexResponse struct {
	Input        string `json:"input"`
	Value        string `json:"value"`
	UsedFallback bool   `json:"used_fallback"`
}

// ContrastResponse reports the contrast between two colors
type ContrastResponse struct {
	Background string        `json:"background"`
	Foreground string        `json:"foreground"`
	Ratio      float64       `json:"ratio"`
	Level      palette.Level `json:"level"`
	Pass       bool          `json:"pass"`
}
