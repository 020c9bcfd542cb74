package models

import (
	"errors"
	"testing"
	"time"

	"github.com/color-game/palette-api/palette"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestPaletteRequest_Params(t *testing.T) {
	params, err := PaletteRequest{BaseColor: "15437f"}.Params()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultParams(palette.DefaultBaseColor), params)

	params, err = PaletteRequest{BaseColor: "#000", Vibrancy: ptr(0), HueShift: ptr(-90)}.Params()
	require.NoError(t, err)
	assert.Equal(t, palette.Black, params.BaseColor)
	assert.Equal(t, 0.0, params.Vibrancy)
	assert.Equal(t, -90.0, params.HueShift)

	_, err = PaletteRequest{BaseColor: "nope"}.Params()
	assert.True(t, errors.Is(err, palette.ErrInvalidColorFormat))
}

func TestPaletteRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		req     PaletteRequest
		wantErr bool
	}{
		{"defaults", PaletteRequest{BaseColor: "#fff"}, false},
		{"edges", PaletteRequest{BaseColor: "#fff", Vibrancy: ptr(100), HueShift: ptr(-180)}, false},
		{"zero values", PaletteRequest{BaseColor: "#fff", Vibrancy: ptr(0), HueShift: ptr(0)}, false},
		{"missing color", PaletteRequest{}, true},
		{"vibrancy negative", PaletteRequest{BaseColor: "#fff", Vibrancy: ptr(-1)}, true},
		{"hue shift too large", PaletteRequest{BaseColor: "#fff", HueShift: ptr(180.5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewColorResponse(t *testing.T) {
	resp := NewColorResponse(palette.Color{R: 255, G: 0, B: 0})
	assert.Equal(t, "#FF0000", resp.Hex.Value)
	assert.Equal(t, "FF0000", resp.Hex.Clean)
	assert.Equal(t, 1.0, resp.RGB.Fraction.R)
	assert.Equal(t, "hsl(0, 100%, 50%)", resp.HSL.Value)

	// hue 359.8 rounds up and wraps to 0
	near := NewColorResponse(palette.Color{R: 255, G: 0, B: 1})
	assert.Equal(t, 0, near.HSL.H)
}

func TestNewShadeResponses(t *testing.T) {
	ramp := palette.GenerateShades(palette.DefaultParams(palette.DefaultBaseColor))
	shades := NewShadeResponses(ramp)

	require.Len(t, shades, palette.ShadeCount)
	assert.Equal(t, 50, shades[0].Position)
	assert.Equal(t, 97.0, shades[0].Lightness)
	assert.Equal(t, 29.02, shades[5].Lightness)
	assert.Equal(t, "#15437F", shades[5].Hex)
}

func TestNewAccessibilityResponse(t *testing.T) {
	params := palette.DefaultParams(palette.DefaultBaseColor)
	scores := palette.ScoreAccessibility(palette.GenerateShades(params))
	resp := NewAccessibilityResponse(params, scores)

	assert.Len(t, resp.Scores, palette.PairCount)
	assert.Equal(t, len(resp.Scores), len(resp.Passing)+len(resp.Failing))
	assert.Equal(t, "#15437F", resp.Params.BaseColor)
	assert.Equal(t, resp.Scores[0], resp.Passing[0])
}

func TestShareToken_RoundTrip(t *testing.T) {
	params := palette.Params{BaseColor: palette.MustParseHex("#3A7BD5"), Vibrancy: 64, HueShift: -12.5}
	now := time.Now()
	id := uuid.NewString()

	token, err := SignShareToken(NewShareClaims(id, params, now, now.Add(time.Hour)), "secret")
	require.NoError(t, err)

	claims, err := ValidateShareToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, ShareScope, claims.Scope)

	got, err := claims.Params()
	require.NoError(t, err)
	assert.Equal(t, params, got)
}

func TestShareToken_Rejected(t *testing.T) {
	params := palette.DefaultParams(palette.DefaultBaseColor)
	now := time.Now()

	token, err := SignShareToken(NewShareClaims("id", params, now, now.Add(time.Hour)), "secret")
	require.NoError(t, err)
	_, err = ValidateShareToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := SignShareToken(NewShareClaims("id", params, now.Add(-2*time.Hour), now.Add(-time.Hour)), "secret")
	require.NoError(t, err)
	_, err = ValidateShareToken(expired, "secret")
	assert.Error(t, err)

	wrongScope := NewShareClaims("id", params, now, now.Add(time.Hour))
	wrongScope.Scope = "authentication"
	token, err = SignShareToken(wrongScope, "secret")
	require.NoError(t, err)
	_, err = ValidateShareToken(token, "secret")
	assert.Error(t, err)
}

func TestShareClaims_BadColor(t *testing.T) {
	_, err := ShareClaims{BaseColor: "zzz"}.Params()
	assert.True(t, errors.Is(err, palette.ErrInvalidColorFormat))
}

func TestNewScoreResponses_RatioNeverRoundsUpALevel(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{4.496, 4.49},
		{6.999, 6.99},
		{2.9999, 2.99},
		{4.5, 4.5},
		{21, 21},
	}

	for _, tt := range tests {
		level, pass := palette.Classify(tt.ratio)
		got := NewScoreResponses([]palette.Score{{Ratio: tt.ratio, Level: level, Pass: pass}})

		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].Ratio)
		displayed, _ := palette.Classify(got[0].Ratio)
		assert.Equal(t, level, displayed, "ratio %v", tt.ratio)
	}
}
