package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
	"github.com/stretchr/testify/require"
)

type fakeDaily struct {
	palette models.DailyPalette
	err     error
}

func (f fakeDaily) Today() (models.DailyPalette, error) {
	return f.palette, f.err
}

var errNotReady = errors.New("daily palette not generated yet")

func testConfig() Config {
	return Config{
		HTTPPort:           ":0",
		JwtSecret:          "test-secret",
		ShareTokenDuration: 3600,
		AllowedOrigins:     []string{"https://palette.example.com"},
		DevMode:            true,
	}
}

func newTestApp(t *testing.T) (*Application, http.Handler) {
	t.Helper()
	daily := fakeDaily{palette: models.DailyPalette{
		Date:        time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
		Params:      palette.DefaultParams(palette.DefaultBaseColor),
		GeneratedAt: time.Date(2026, time.October, 17, 0, 0, 1, 0, time.UTC),
	}}
	app := NewApplication(testConfig(), daily)
	return app, app.BuildRoutes(http.NewServeMux())
}

func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

func floatPtr(v float64) *float64 {
	return &v
}
