package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/color-game/palette-api/models"
	"github.com/google/uuid"
)

// POST /v1/palettes/share - Mint a signed token that rebuilds this palette
func (app *Application) sharePalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.methodNotAllowed(w, r, ErrPOST, http.MethodPost)
		return
	}

	params, ok := app.paletteParams(w, r)
	if !ok {
		return
	}

	issued := app.Now()
	expiry := issued.Add(time.Second * time.Duration(app.Config.ShareTokenDuration))
	claims := models.NewShareClaims(uuid.NewString(), params, issued, expiry)

	token, err := models.SignShareToken(claims, app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, models.ShareResponse{
		Token:  token,
		Expiry: expiry.UTC(),
		Params: models.NewParamsResponse(params),
	})
}

// GET /v1/palettes/shared?token=
func (app *Application) getSharedPalette(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		app.badRequest(w, r, errors.New("token is required"))
		return
	}

	claims, err := models.ValidateShareToken(tokenString, app.Config.JwtSecret)
	if err != nil {
		app.invalidShareToken(w, r, err)
		return
	}

	params, err := claims.Params()
	if err != nil {
		app.invalidShareToken(w, r, err)
		return
	}

	pal, access := app.buildPalette(params)
	app.writeJSON(w, r, http.StatusOK, models.SharedPaletteResponse{
		TokenID:       claims.ID,
		Palette:       pal,
		Accessibility: access,
	})
}
