package api

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	HTTPPort           string
	JwtSecret          string
	ShareTokenDuration int // seconds
	AllowedOrigins     []string
	DevMode            bool
}

const defaultJwtSecret = "your-secret-key-change-this"

// Validate rejects configurations the server cannot run with
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT is required")
	}
	if c.JwtSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JwtSecret == defaultJwtSecret && !c.DevMode {
		return errors.New("JWT_SECRET must be changed outside dev mode")
	}
	if c.ShareTokenDuration <= 0 {
		return errors.New("SHARE_TOKEN_DURATION must be positive")
	}
	return nil
}

// DailyPaletteSource supplies the palette of the day
type DailyPaletteSource interface {
	Today() (models.DailyPalette, error)
}

type Application struct {
	Config Config
	Daily  DailyPaletteSource
	Memo   *palette.Memo
	Now    func() time.Time

	validate *validator.Validate

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewApplication(config Config, daily DailyPaletteSource) *Application {
	return &Application{
		Config:   config,
		Daily:    daily,
		Memo:     &palette.Memo{},
		Now:      time.Now,
		validate: validator.New(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (app *Application) randomBaseColor(current palette.Color) palette.Color {
	app.rngMu.Lock()
	defer app.rngMu.Unlock()
	return palette.RandomBaseColor(app.rng, current)
}
