package api

import (
	"errors"
	"net/http"

	"github.com/color-game/palette-api/models"
)

// GET /v1/palettes/daily - Get today's palette
func (app *Application) getDailyPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	if app.Daily == nil {
		app.serviceUnavailable(w, r, errors.New("daily palette is not configured"))
		return
	}

	daily, err := app.Daily.Today()
	if err != nil {
		app.serviceUnavailable(w, r, err)
		return
	}

	pal, access := app.buildPalette(daily.Params)
	app.writeJSON(w, r, http.StatusOK, models.DailyPaletteResponse{
		Date:          daily.Date.Format("2006-01-02"),
		Palette:       pal,
		Accessibility: access,
		GeneratedAt:   daily.GeneratedAt,
	})
}
