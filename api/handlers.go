package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
)

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Palette API")
}

// GET /v1/colors/convert?hex=
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	color, err := palette.ParseHex(r.URL.Query().Get("hex"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, models.NewColorResponse(color))
}

// GET /v1/colors/hsl?h=&s=&l=
func (app *Application) hslToHex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	query := r.URL.Query()
	var hsl [3]float64
	for i, key := range []string{"h", "s", "l"} {
		value, err := strconv.ParseFloat(query.Get(key), 64)
		if err != nil {
			app.badRequest(w, r, fmt.Errorf("%s must be a number", key))
			return
		}
		hsl[i] = value
	}

	// echo what was converted; raw NaN or Inf would not encode
	hue, sat, light := palette.NormalizeHSL(hsl[0], hsl[1], hsl[2])
	app.writeJSON(w, r, http.StatusOK, models.HSLToHexResponse{
		Hue:        hue,
		Saturation: sat,
		Lightness:  light,
		Hex:        palette.HSLToHex(hue, sat, light),
	})
}

// GET /v1/colors/format?value=&fallback=
func (app *Application) formatHex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	query := r.URL.Query()
	fallback := query.Get("fallback")
	if fallback == "" {
		fallback = palette.DefaultBaseColor.Hex()
	}
	input := query.Get("value")

	// the fallback is the caller's last good color and is returned untouched
	value := palette.FormatHexValue(input, fallback)
	_, parseErr := palette.ParseHex(input)

	app.writeJSON(w, r, http.StatusOK, models.FormatHexResponse{
		Input:        input,
		Value:        value,
		UsedFallback: parseErr != nil,
	})
}

// GET /v1/colors/contrast?background=&foreground=
func (app *Application) contrast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	query := r.URL.Query()
	background, err := palette.ParseHex(query.Get("background"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}
	foreground, err := palette.ParseHex(query.Get("foreground"))
	if err != nil {
		app.invalidColor(w, r, err)
		return
	}

	ratio := palette.ContrastRatio(background, foreground)
	level, pass := palette.Classify(ratio)

	app.writeJSON(w, r, http.StatusOK, models.ContrastResponse{
		Background: background.Hex(),
		Foreground: foreground.Hex(),
		Ratio:      ratio,
		Level:      level,
		Pass:       pass,
	})
}

// GET /v1/colors/random?from= - Randomize a base color near the current one
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.methodNotAllowed(w, r, ErrGET, http.MethodGet)
		return
	}

	current := palette.DefaultBaseColor
	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := palette.ParseHex(from)
		if err != nil {
			app.invalidColor(w, r, err)
			return
		}
		current = parsed
	}

	color := app.randomBaseColor(current)
	w.Header().Set("Cache-Control", "no-store")
	app.writeJSON(w, r, http.StatusOK, models.RandomColorResponse{
		Color:  models.NewColorResponse(color),
		Params: models.NewParamsResponse(palette.DefaultParams(color)),
	})
}

// paletteParams reads a PaletteRequest from the query string (GET) or JSON body (POST).
// On failure it writes the error response and returns false.
func (app *Application) paletteParams(w http.ResponseWriter, r *http.Request) (palette.Params, bool) {
	var req models.PaletteRequest

	switch r.Method {
	case http.MethodGet:
		parsed, err := paletteRequestFromQuery(r)
		if err != nil {
			app.badRequest(w, r, err)
			return palette.Params{}, false
		}
		req = parsed
	case http.MethodPost:
		if err := decodeJSON(r, &req); err != nil {
			app.badJSONRequest(w, r, err)
			return palette.Params{}, false
		}
	default:
		app.methodNotAllowed(w, r, ErrGETOrPOST, http.MethodGet, http.MethodPost)
		return palette.Params{}, false
	}

	if err := app.validate.Struct(req); err != nil {
		app.validationFailed(w, r, err)
		return palette.Params{}, false
	}

	params, err := req.Params()
	if err != nil {
		if errors.Is(err, palette.ErrInvalidColorFormat) {
			app.invalidColor(w, r, err)
		} else {
			app.badRequest(w, r, err)
		}
		return palette.Params{}, false
	}
	return params, true
}

func paletteRequestFromQuery(r *http.Request) (models.PaletteRequest, error) {
	query := r.URL.Query()
	req := models.PaletteRequest{BaseColor: query.Get("baseColor")}

	if raw := query.Get("vibrancy"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.PaletteRequest{}, errors.New("vibrancy must be a number")
		}
		req.Vibrancy = &v
	}
	if raw := query.Get("hueShift"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.PaletteRequest{}, errors.New("hueShift must be a number")
		}
		req.HueShift = &v
	}
	return req, nil
}
