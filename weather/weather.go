package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"agrimitra/models"
	"agrimitra/rdx"
)

// cacheTTL bounds how stale a served snapshot can be. Re-fetching inside the
// window is wasted provider quota, not a correctness problem.
const cacheTTL = 15 * time.Minute

// Provider fetches a WeatherSnapshot for coordinates. Constructor-injected
// everywhere so handlers and tests can swap implementations.
type Provider interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
}

// HTTPProvider calls an Open-Meteo style forecast endpoint.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// forecastResponse mirrors the provider's wire shape.
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		Rain        float64 `json:"rain"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		Humidity    []float64 `json:"relative_humidity_2m"`
		Rain        []float64 `json:"rain"`
	} `json:"hourly"`
	Daily struct {
		Time     []string  `json:"time"`
		TempMin  []float64 `json:"temperature_2m_min"`
		TempMax  []float64 `json:"temperature_2m_max"`
		Humidity []float64 `json:"relative_humidity_2m_mean"`
		Rain     []float64 `json:"rain_sum"`
	} `json:"daily"`
}

func (p *HTTPProvider) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,rain")
	q.Set("hourly", "temperature_2m,relative_humidity_2m,rain")
	q.Set("daily", "temperature_2m_min,temperature_2m_max,relative_humidity_2m_mean,rain_sum")
	q.Set("forecast_days", "7")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather fetch: provider returned %d", resp.StatusCode)
	}

	var raw forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("weather fetch: decode: %w", err)
	}

	return buildSnapshot(lat, lon, raw), nil
}

func buildSnapshot(lat, lon float64, raw forecastResponse) *models.WeatherSnapshot {
	snap := &models.WeatherSnapshot{
		Latitude:    lat,
		Longitude:   lon,
		Temperature: raw.Current.Temperature,
		Humidity:    raw.Current.Humidity,
		WindSpeed:   raw.Current.WindSpeed,
		Rainfall:    raw.Current.Rain,
		FetchedAt:   time.Now(),
	}

	for i := range raw.Hourly.Time {
		if i >= 24 {
			break
		}
		t, _ := time.Parse("2006-01-02T15:04", raw.Hourly.Time[i])
		snap.Hourly = append(snap.Hourly, models.HourlyForecast{
			Time:        t,
			Temperature: at(raw.Hourly.Temperature, i),
			Humidity:    at(raw.Hourly.Humidity, i),
			Rainfall:    at(raw.Hourly.Rain, i),
		})
	}

	for i := range raw.Daily.Time {
		if i >= 7 {
			break
		}
		d, _ := time.Parse("2006-01-02", raw.Daily.Time[i])
		snap.Daily = append(snap.Daily, models.DailySummary{
			Date:     d,
			TempMin:  at(raw.Daily.TempMin, i),
			TempMax:  at(raw.Daily.TempMax, i),
			Humidity: at(raw.Daily.Humidity, i),
			Rainfall: at(raw.Daily.Rain, i),
		})
	}
	return snap
}

func at(vs []float64, i int) float64 {
	if i < len(vs) {
		return vs[i]
	}
	return 0
}

// CachedProvider wraps another provider with a redis cache keyed by rounded
// coordinates, so nearby fields share one fetch.
type CachedProvider struct {
	Upstream Provider
}

func NewCachedProvider(upstream Provider) *CachedProvider {
	return &CachedProvider{Upstream: upstream}
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
}

func (c *CachedProvider) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	key := cacheKey(lat, lon)

	if rdx.Conn != nil {
		if val, err := rdx.Conn.Get(ctx, key).Result(); err == nil && val != "" {
			var snap models.WeatherSnapshot
			if err := json.Unmarshal([]byte(val), &snap); err == nil {
				return &snap, nil
			}
		}
	}

	snap, err := c.Upstream.Fetch(ctx, lat, lon)
	if err != nil {
		// no retry here; callers surface the failure
		return nil, err
	}

	if rdx.Conn != nil {
		if jsonBytes, err := json.Marshal(snap); err == nil {
			_ = rdx.Conn.Set(ctx, key, jsonBytes, cacheTTL).Err()
		}
	}
	return snap, nil
}
