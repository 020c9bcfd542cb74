package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	// Check against configured allowed origins
	for _, allowed := range allowedOrigins {
		cleanedAllowed := cleanOrigin(strings.TrimSpace(allowed))
		if cleanedAllowed == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, config Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			referer := r.Header.Get("Referer")
			if referer != "" {
				origin = referer
			}
		}

		if origin == "" {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		// Check if origin is allowed
		if isAllowedOrigin(origin, config.AllowedOrigins, config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) *http.ServeMux {
	finalMux := http.NewServeMux()

	mux.HandleFunc("/", app.home)

	// Color conversion
	mux.HandleFunc("/v1/colors/convert", app.convertColor)
	mux.HandleFunc("/v1/colors/hsl", app.hslToHex)
	mux.HandleFunc("/v1/colors/format", app.formatHex)
	mux.HandleFunc("/v1/colors/contrast", app.contrast)
	mux.HandleFunc("/v1/colors/random", app.getRandomColor)

	// Palettes
	mux.HandleFunc("/v1/palettes/generate", app.generatePalette)
	mux.HandleFunc("/v1/palettes/accessibility", app.scorePalette)
	mux.HandleFunc("/v1/palettes/export", app.exportPalette)
	mux.HandleFunc("/v1/palettes/daily", app.getDailyPalette)

	// Share tokens
	mux.HandleFunc("/v1/palettes/share", app.sharePalette)
	mux.HandleFunc("/v1/palettes/shared", app.getSharedPalette)

	// Wrap entire mux with CORS and origins check
	finalMux.Handle("/", withRequestLogging(withRequestID(wrapMuxWithCorsAndOrigins(mux, app.Config))))

	return finalMux
}
