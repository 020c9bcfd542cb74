package api

import (
	"fmt"
	"net/http"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
)

// GET|POST /v1/palettes/generate
func (app *Application) generatePalette(w http.ResponseWriter, r *http.Request) {
	params, ok := app.paletteParams(w, r)
	if !ok {
		return
	}

	ramp := app.Memo.Shades(params)
	app.writeJSON(w, r, http.StatusOK, models.PaletteResponse{
		Params: models.NewParamsResponse(params),
		Shades: models.NewShadeResponses(ramp),
	})
}

// GET|POST /v1/palettes/accessibility
func (app *Application) scorePalette(w http.ResponseWriter, r *http.Request) {
	params, ok := app.paletteParams(w, r)
	if !ok {
		return
	}

	scores := app.Memo.Scores(app.Memo.Shades(params))
	app.writeJSON(w, r, http.StatusOK, models.NewAccessibilityResponse(params, scores))
}

// GET|POST /v1/palettes/export - Download the ramp as {position: hex} JSON
func (app *Application) exportPalette(w http.ResponseWriter, r *http.Request) {
	params, ok := app.paletteParams(w, r)
	if !ok {
		return
	}

	body, err := palette.ExportJSON(app.Memo.Shades(params))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", palette.ExportFilename(params.BaseColor)))
	writeBody(w, r, http.StatusOK, "application/json", body)
}

// buildPalette renders both views of a palette for the share and daily endpoints
func (app *Application) buildPalette(params palette.Params) (models.PaletteResponse, models.AccessibilityResponse) {
	ramp := app.Memo.Shades(params)
	scores := app.Memo.Scores(ramp)

	pal := models.PaletteResponse{
		Params: models.NewParamsResponse(params),
		Shades: models.NewShadeResponses(ramp),
	}
	return pal, models.NewAccessibilityResponse(params, scores)
}
