package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Server.DataDir = t.TempDir()
	app, err := New(Options{Config: &cfg, Log: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func TestHealthAndReady(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, 200, rec.Code)
}

func TestTaskLifecycleThroughRouter(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	body := `{"title":"standup","startTime":"09:00","endTime":"09:15","category":"meeting"}`
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body)))
	require.Equal(t, 201, rec.Code)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"standup"`)
}

func TestRouteRegistryListsSurface(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))
	require.Equal(t, 200, rec.Code)
	for _, pattern := range []string{"/api/tasks", "/api/chat", "/api/pet", "/api/mood", "/api/streak", "/api/habits", "/api/notes", "/api/quote", "/api/weather"} {
		assert.Contains(t, rec.Body.String(), pattern)
	}
}

func TestRouteRegistryRejectsNonGet(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/routes", nil))
	assert.Equal(t, 405, rec.Code)
}

func TestHabitLifecycleThroughRouter(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/habits", strings.NewReader(`{"name":"Drink water"}`)))
	require.Equal(t, 201, rec.Code)

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/habits", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Drink water"`)
	assert.Contains(t, rec.Body.String(), `"streak":0`)
}

func TestDashboardShellServed(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Daily Focus Hub")
	assert.Contains(t, rec.Body.String(), "/static/js/app.js")
}

func TestStaticAssetsEmbedded(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
	require.Equal(t, 200, rec.Code)
}

func TestRequestIDHeaderOnResponses(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownPetActionIs404(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pet/paint", strings.NewReader(`{}`)))
	assert.Equal(t, 404, rec.Code)
}
