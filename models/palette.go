package models

import (
	"math"

	"github.com/color-game/palette-api/palette"
)

// PaletteRequest is the body shared by the palette endpoints. Vibrancy and hue shift
// default to 50 and 0 when omitted.
type PaletteRequest struct {
	BaseColor string   `json:"baseColor" validate:"required"`
	Vibrancy  *float64 `json:"vibrancy,omitempty" validate:"omitempty,min=0,max=100"`
	HueShift  *float64 `json:"hueShift,omitempty" validate:"omitempty,min=-180,max=180"`
}

// Params parses the base color and applies defaults
func (req PaletteRequest) Params() (palette.Params, error) {
	base, err := palette.ParseHex(req.BaseColor)
	if err != nil {
		return palette.Params{}, err
	}
	params := palette.DefaultParams(base)
	if req.Vibrancy != nil {
		params.Vibrancy = *req.Vibrancy
	}
	if req.HueShift != nil {
		params.HueShift = *req.HueShift
	}
	return params, nil
}

// ParamsResponse echoes the parameters a palette was generated from
type ParamsResponse struct {
	BaseColor string  `json:"baseColor"`
	Vibrancy  float64 `json:"vibrancy"`
	HueShift  float64 `json:"hueShift"`
}

func NewParamsResponse(p palette.Params) ParamsResponse {
	return ParamsResponse{
		BaseColor: p.BaseColor.Hex(),
		Vibrancy:  p.Vibrancy,
		HueShift:  p.HueShift,
	}
}

type ShadeResponse struct {
	Position   int     `json:"position"`
	Hex        string  `json:"hex"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

func NewShadeResponse(s palette.Shade) ShadeResponse {
	return ShadeResponse{
		Position:   int(s.Position),
		Hex:        s.Hex(),
		Hue:        round2(s.Hue),
		Saturation: round2(s.Saturation),
		Lightness:  round2(s.Lightness),
	}
}

func NewShadeResponses(r palette.Ramp) []ShadeResponse {
	out := make([]ShadeResponse, 0, len(r))
	for _, s := range r {
		out = append(out, NewShadeResponse(s))
	}
	return out
}

// ScoreResponse is one ranked background/foreground pair
type ScoreResponse struct {
	BackgroundPosition int           `json:"backgroundPosition"`
	ForegroundPosition int           `json:"foregroundPosition"`
	Background         string        `json:"background"`
	Foreground         string        `json:"foreground"`
	Ratio              float64       `json:"ratio"`
	Level              palette.Level `json:"level"`
	Pass               bool          `json:"pass"`
}

func NewScoreResponses(scores []palette.Score) []ScoreResponse {
	out := make([]ScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, ScoreResponse{
			BackgroundPosition: int(s.Background.Position),
			ForegroundPosition: int(s.Foreground.Position),
			Background:         s.Background.Hex(),
			Foreground:         s.Foreground.Hex(),
			Ratio:              floor2(s.Ratio),
			Level:              s.Level,
			Pass:               s.Pass,
		})
	}
	return out
}

// PaletteResponse is a generated ramp with its parameters
type PaletteResponse struct {
	Params ParamsResponse  `json:"params"`
	Shades []ShadeResponse `json:"shades"`
}

// AccessibilityResponse carries the full ranking plus the pass/fail split
type AccessibilityResponse struct {
	Params  ParamsResponse  `json:"params"`
	Scores  []ScoreResponse `json:"scores"`
	Passing []ScoreResponse `json:"passing"`
	Failing []ScoreResponse `json:"failing"`
}

func NewAccessibilityResponse(p palette.Params, scores []palette.Score) AccessibilityResponse {
	passing, failing := palette.Partition(scores)
	return AccessibilityResponse{
		Params:  NewParamsResponse(p),
		Scores:  NewScoreResponses(scores),
		Passing: NewScoreResponses(passing),
		Failing: NewScoreResponses(failing),
	}
}

// RandomColorResponse is a randomized base color with the slider defaults it resets to
type RandomColorResponse struct {
	Color  ColorResponse  `json:"color"`
	Params ParamsResponse `json:"params"`
}

// round2 trims floats to two decimals for display; ranking uses the full values
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// floor2 truncates a contrast ratio for display so it never reads as the next level up
// (4.496 shows as 4.49 beside "AA Large", not 4.5).
func floor2(v float64) float64 {
	return math.Floor(v*100) / 100
}
