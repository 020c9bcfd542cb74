package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_Assigned(t *testing.T) {
	_, h := newTestApp(t)

	w := doRequest(t, h, http.MethodGet, "/", nil)
	_, err := uuid.Parse(w.Header().Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestRequestID_ReusesInbound(t *testing.T) {
	_, h := newTestApp(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, id)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(requestIDHeader))
}

func TestRequestID_FromContext(t *testing.T) {
	var seen string
	h := withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, w.Header().Get(requestIDHeader), seen)
	assert.Empty(t, RequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestCors_Origins(t *testing.T) {
	_, h := newTestApp(t)

	tests := []struct {
		name       string
		origin     string
		wantStatus int
	}{
		{"configured origin", "https://palette.example.com", http.StatusOK},
		{"localhost in dev mode", "http://localhost:5173", http.StatusOK},
		{"unknown origin", "https://evil.example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCors_LocalhostOutsideDevMode(t *testing.T) {
	assert.False(t, isAllowedOrigin("http://localhost:3000", nil, false))
	assert.True(t, isAllowedOrigin("http://localhost:3000", []string{" http://localhost:3000"}, false))
}

func TestCors_Preflight(t *testing.T) {
	_, h := newTestApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/palettes/generate", nil)
	req.Header.Set("Origin", "https://palette.example.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "ETag")
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())

	cfg := testConfig()
	cfg.JwtSecret = ""
	assert.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.ShareTokenDuration = 0
	assert.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.HTTPPort = ""
	assert.Error(t, cfg.Validate())

	cfg = testConfig()
	cfg.JwtSecret = defaultJwtSecret
	assert.NoError(t, cfg.Validate())
	cfg.DevMode = false
	assert.Error(t, cfg.Validate())
}

func TestNotModified(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"a", "b"`)
	assert.True(t, notModified(req, `"b"`))
	assert.False(t, notModified(req, `"c"`))

	post := httptest.NewRequest(http.MethodPost, "/", nil)
	post.Header.Set("If-None-Match", `"b"`)
	assert.False(t, notModified(post, `"b"`))
}
