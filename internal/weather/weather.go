package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultForecastBase = "https://api.open-meteo.com"
	defaultGeocodeBase  = "https://nominatim.openstreetmap.org"
	defaultCacheTTL     = 30 * time.Minute

	// Manhattan, used when the caller sends no coordinates.
	fallbackLat = 40.7128
	fallbackLon = -74.006

	// Open-Meteo reports wind in km/h.
	kmhToMph = 0.621371
)

// Report is the current-conditions snapshot shown on the dashboard.
// Temperature is Fahrenheit, wind speed mph.
type Report struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
	City        string `json:"city"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
}

type codeInfo struct {
	condition string
	icon      string
}

// WMO weather interpretation codes.
var weatherCodes = map[int]codeInfo{
	0:  {"Clear", "☀️"},
	1:  {"Mostly Clear", "🌤️"},
	2:  {"Partly Cloudy", "⛅"},
	3:  {"Cloudy", "☁️"},
	45: {"Foggy", "🌫️"},
	48: {"Foggy", "🌫️"},
	51: {"Light Drizzle", "🌧️"},
	53: {"Drizzle", "🌧️"},
	55: {"Heavy Drizzle", "🌧️"},
	61: {"Light Rain", "🌧️"},
	63: {"Rain", "🌧️"},
	65: {"Heavy Rain", "🌧️"},
	71: {"Light Snow", "🌨️"},
	73: {"Snow", "🌨️"},
	75: {"Heavy Snow", "❄️"},
	77: {"Snow Grains", "🌨️"},
	80: {"Light Showers", "🌦️"},
	81: {"Showers", "🌦️"},
	82: {"Heavy Showers", "⛈️"},
	85: {"Snow Showers", "🌨️"},
	86: {"Heavy Snow", "❄️"},
	95: {"Thunderstorm", "⛈️"},
	96: {"Thunderstorm", "⛈️"},
	99: {"Thunderstorm", "⛈️"},
}

type cacheEntry struct {
	Key     string    `json:"key"`
	Data    Report    `json:"data"`
	Fetched time.Time `json:"fetched"`
}

// Service fetches current conditions from Open-Meteo with a reverse
// geocode from Nominatim for the city name. Results are cached on disk
// so a dashboard reload inside the TTL makes no upstream calls.
type Service struct {
	log          zerolog.Logger
	hc           *http.Client
	forecastBase string
	geocodeBase  string
	cacheTTL     time.Duration
	now          func() time.Time

	mu        sync.Mutex
	cachePath string
	cache     *cacheEntry
}

type Option func(*Service)

func WithBaseURLs(forecast, geocode string) Option {
	return func(s *Service) {
		s.forecastBase = forecast
		s.geocodeBase = geocode
	}
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.cacheTTL = ttl }
}

func NewService(dataDir string, log zerolog.Logger, opts ...Option) (*Service, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	s := &Service{
		log:          log.With().Str("component", "weather").Logger(),
		hc:           &http.Client{Timeout: 10 * time.Second},
		forecastBase: defaultForecastBase,
		geocodeBase:  defaultGeocodeBase,
		cacheTTL:     defaultCacheTTL,
		now:          time.Now,
		cachePath:    filepath.Join(dataDir, "weather_cache.json"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadCache()
	return s, nil
}

func (s *Service) loadCache() {
	b, err := os.ReadFile(s.cachePath)
	if err != nil {
		return
	}
	var e cacheEntry
	if err := json.Unmarshal(b, &e); err != nil {
		return
	}
	s.cache = &e
}

func (s *Service) saveCacheLocked() {
	b, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(s.cachePath, b, 0o644); err != nil {
		s.log.Error().Err(err).Msg("write weather cache")
	}
}

func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.2f,%.2f", lat, lon)
}

// Current returns conditions for the given coordinates, falling back to
// the default location when lat/lon are nil.
func (s *Service) Current(ctx context.Context, lat, lon *float64) (Report, error) {
	la, lo := fallbackLat, fallbackLon
	if lat != nil && lon != nil {
		la, lo = *lat, *lon
	}
	key := coordKey(la, lo)

	s.mu.Lock()
	if c := s.cache; c != nil && c.Key == key && s.now().Sub(c.Fetched) < s.cacheTTL {
		data := c.Data
		s.mu.Unlock()
		return data, nil
	}
	s.mu.Unlock()

	report, err := s.fetch(ctx, la, lo)
	if err != nil {
		return Report{}, err
	}

	s.mu.Lock()
	s.cache = &cacheEntry{Key: key, Data: report, Fetched: s.now()}
	s.saveCacheLocked()
	s.mu.Unlock()
	return report, nil
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (s *Service) fetch(ctx context.Context, lat, lon float64) (Report, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	q.Set("temperature_unit", "fahrenheit")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.forecastBase+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return Report{}, err
	}
	resp, err := s.hc.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch forecast: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("forecast upstream returned %d", resp.StatusCode)
	}

	var fc forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return Report{}, fmt.Errorf("decode forecast: %w", err)
	}

	info, ok := weatherCodes[fc.Current.WeatherCode]
	if !ok {
		info = codeInfo{"Unknown", "🌡️"}
	}

	return Report{
		Temperature: int(math.Round(fc.Current.Temperature)),
		Condition:   info.condition,
		Icon:        info.icon,
		City:        s.cityName(ctx, lat, lon),
		Humidity:    int(fc.Current.Humidity),
		WindSpeed:   int(math.Round(fc.Current.WindSpeed * kmhToMph)),
	}, nil
}

type geocodeResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}

// cityName is best-effort. Any geocoding failure falls back to a
// generic label; the weather itself still renders.
func (s *Service) cityName(ctx context.Context, lat, lon float64) string {
	const fallbackCity = "Your Location"

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%g", lat))
	q.Set("lon", fmt.Sprintf("%g", lon))
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.geocodeBase+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return fallbackCity
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		s.log.Debug().Err(err).Msg("reverse geocode failed")
		return fallbackCity
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallbackCity
	}

	var geo geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return fallbackCity
	}
	for _, name := range []string{geo.Address.City, geo.Address.Town, geo.Address.Village, geo.Address.County} {
		if name != "" {
			return name
		}
	}
	return fallbackCity
}
