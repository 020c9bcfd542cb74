package models

import (
	"fmt"
	"time"

	"github.com/color-game/palette-api/palette"
	"github.com/golang-jwt/jwt/v5"
)

const ShareScope = "palette-share"

// ShareClaims carry palette parameters inside a signed share token, so a shared
// palette can be rebuilt without storing anything server side.
type ShareClaims struct {
	BaseColor string  `json:"baseColor"`
	Vibrancy  float64 `json:"vibrancy"`
	HueShift  float64 `json:"hueShift"`
	Scope     string  `json:"scope"`
	jwt.RegisteredClaims
}

// ShareResponse is returned when a share token is minted
type ShareResponse struct {
	Token  string         `json:"token"`
	Expiry time.Time      `json:"expiry"`
	Params ParamsResponse `json:"params"`
}

// SharedPaletteResponse is what a share token resolves to
type SharedPaletteResponse struct {
	TokenID       string                `json:"tokenId"`
	Palette       PaletteResponse       `json:"palette"`
	Accessibility AccessibilityResponse `json:"accessibility"`
}

func NewShareClaims(id string, p palette.Params, issued, expiry time.Time) ShareClaims {
	return ShareClaims{
		BaseColor: p.BaseColor.Hex(),
		Vibrancy:  p.Vibrancy,
		HueShift:  p.HueShift,
		Scope:     ShareScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(issued),
		},
	}
}

// Params rebuilds the palette parameters from the claims
func (c ShareClaims) Params() (palette.Params, error) {
	base, err := palette.ParseHex(c.BaseColor)
	if err != nil {
		return palette.Params{}, err
	}
	return palette.Params{BaseColor: base, Vibrancy: c.Vibrancy, HueShift: c.HueShift}, nil
}

func SignShareToken(claims ShareClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateShareToken(tokenString string, secret string) (*ShareClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShareClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*ShareClaims)
	if !ok || claims.Scope != ShareScope {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
