package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upstreams(t *testing.T, forecastHits, geocodeHits *atomic.Int64, code int) (forecast, geocode *httptest.Server) {
	t.Helper()
	forecast = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecastHits.Add(1)
		assert.Equal(t, "fahrenheit", r.URL.Query().Get("temperature_unit"))
		fmt.Fprintf(w, `{"current":{"temperature_2m":71.6,"relative_humidity_2m":40,"weather_code":%d,"wind_speed_10m":16.0}}`, code)
	}))
	geocode = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		geocodeHits.Add(1)
		fmt.Fprint(w, `{"address":{"city":"Brooklyn"}}`)
	}))
	t.Cleanup(forecast.Close)
	t.Cleanup(geocode.Close)
	return forecast, geocode
}

func newTestService(t *testing.T, forecast, geocode *httptest.Server) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir(), zerolog.Nop(), WithBaseURLs(forecast.URL, geocode.URL))
	require.NoError(t, err)
	return svc
}

func TestCurrentMapsUpstreamFields(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 63)
	svc := newTestService(t, forecast, geocode)

	lat, lon := 40.7, -74.0
	rep, err := svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)
	assert.Equal(t, 72, rep.Temperature)
	assert.Equal(t, "Rain", rep.Condition)
	assert.Equal(t, "🌧️", rep.Icon)
	assert.Equal(t, "Brooklyn", rep.City)
	assert.Equal(t, 40, rep.Humidity)
	assert.Equal(t, 10, rep.WindSpeed, "16 km/h is 10 mph")
}

func TestCacheSkipsUpstreamWithinTTL(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 0)
	svc := newTestService(t, forecast, geocode)

	lat, lon := 40.7, -74.0
	_, err := svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)
	_, err = svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)

	assert.Equal(t, int64(1), fh.Load())
	assert.Equal(t, int64(1), gh.Load())
}

func TestCacheExpires(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 0)
	svc := newTestService(t, forecast, geocode)
	svc.now = func() time.Time { return time.Now().Add(time.Hour) } // everything cached looks stale

	lat, lon := 40.7, -74.0
	_, err := svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fh.Load())
}

func TestDifferentCoordsBypassCache(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 0)
	svc := newTestService(t, forecast, geocode)

	lat, lon := 40.7, -74.0
	_, err := svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)

	lat2, lon2 := 51.5, -0.12
	_, err = svc.Current(context.Background(), &lat2, &lon2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fh.Load())
}

func TestNilCoordsUseFallback(t *testing.T) {
	var fh, gh atomic.Int64
	var seenLat string
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fh.Add(1)
		seenLat = r.URL.Query().Get("latitude")
		fmt.Fprint(w, `{"current":{"temperature_2m":60,"relative_humidity_2m":50,"weather_code":1,"wind_speed_10m":5}}`)
	}))
	t.Cleanup(forecast.Close)
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gh.Add(1)
		fmt.Fprint(w, `{"address":{"city":"New York"}}`)
	}))
	t.Cleanup(geocode.Close)

	svc := newTestService(t, forecast, geocode)
	rep, err := svc.Current(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "40.7128", seenLat)
	assert.Equal(t, "New York", rep.City)
}

func TestGeocodeFailureIsBestEffort(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current":{"temperature_2m":60,"relative_humidity_2m":50,"weather_code":1,"wind_speed_10m":5}}`)
	}))
	t.Cleanup(forecast.Close)
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(geocode.Close)

	svc := newTestService(t, forecast, geocode)
	rep, err := svc.Current(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Your Location", rep.City)
	assert.Equal(t, "Mostly Clear", rep.Condition)
}

func TestUnknownWeatherCode(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 42)
	svc := newTestService(t, forecast, geocode)

	rep, err := svc.Current(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", rep.Condition)
	assert.Equal(t, "🌡️", rep.Icon)
}

func TestForecastFailureSurfaces(t *testing.T) {
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(forecast.Close)
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(geocode.Close)

	svc := newTestService(t, forecast, geocode)
	_, err := svc.Current(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestCachePersistsAcrossRestart(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 0)
	dir := t.TempDir()

	svc, err := NewService(dir, zerolog.Nop(), WithBaseURLs(forecast.URL, geocode.URL))
	require.NoError(t, err)
	lat, lon := 40.7, -74.0
	_, err = svc.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)

	reopened, err := NewService(dir, zerolog.Nop(), WithBaseURLs(forecast.URL, geocode.URL))
	require.NoError(t, err)
	rep, err := reopened.Current(context.Background(), &lat, &lon)
	require.NoError(t, err)
	assert.Equal(t, "Brooklyn", rep.City)
	assert.Equal(t, int64(1), fh.Load(), "restart served from the disk cache")
}

func TestHandlerRejectsBadCoords(t *testing.T) {
	svc, err := NewService(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	h := NewHandler(svc)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/weather?lat=abc&lon=1", nil))
	assert.Equal(t, 400, rec.Code)
}

func TestHandlerServesReport(t *testing.T) {
	var fh, gh atomic.Int64
	forecast, geocode := upstreams(t, &fh, &gh, 2)
	h := NewHandler(newTestService(t, forecast, geocode))

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/weather?lat=40.7&lon=-74.0", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Partly Cloudy"`)
}
