package models

import (
	"time"

	"github.com/color-game/palette-api/palette"
)

// DailyPalette is the palette of the day held by the scheduler
type DailyPalette struct {
	Date        time.Time
	Params      palette.Params
	GeneratedAt time.Time
}

// DailyPaletteResponse is the API shape of a DailyPalette
type DailyPaletteResponse struct {
	Date          string                `json:"date"`
	Palette       PaletteResponse       `json:"palette"`
	Accessibility AccessibilityResponse `json:"accessibility"`
	GeneratedAt   time.Time             `json:"generated_at"`
}
