package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrimitra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const providerPayload = `{
	"current": {"temperature_2m": 31.5, "relative_humidity_2m": 62, "wind_speed_10m": 8.4, "rain": 0.2},
	"hourly": {
		"time": ["2024-04-10T00:00", "2024-04-10T01:00", "2024-04-10T02:00"],
		"temperature_2m": [28.1, 27.6, 27.0],
		"relative_humidity_2m": [70, 72, 75],
		"rain": [0.0, 1.2, 0.8]
	},
	"daily": {
		"time": ["2024-04-10", "2024-04-11"],
		"temperature_2m_min": [22.0, 21.4],
		"temperature_2m_max": [33.5, 34.0],
		"relative_humidity_2m_mean": [65, 60],
		"rain_sum": [2.0, 0.0]
	}
}`

func TestHTTPProviderParsesSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "18.5200", r.URL.Query().Get("latitude"))
		assert.Equal(t, "73.8600", r.URL.Query().Get("longitude"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(providerPayload))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL)
	snap, err := provider.Fetch(context.Background(), 18.52, 73.86)
	require.NoError(t, err)

	assert.Equal(t, 31.5, snap.Temperature)
	assert.Equal(t, 62.0, snap.Humidity)
	assert.Equal(t, 8.4, snap.WindSpeed)
	require.Len(t, snap.Hourly, 3)
	assert.Equal(t, 1.2, snap.Hourly[1].Rainfall)
	require.Len(t, snap.Daily, 2)
	assert.Equal(t, 33.5, snap.Daily[0].TempMax)
	assert.InDelta(t, 2.0, snap.Next24hRainfall(), 0.001)
}

func TestHTTPProviderSurfacesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL)
	_, err := provider.Fetch(context.Background(), 18.52, 73.86)
	assert.Error(t, err)
}

type stubProvider struct {
	snap  *models.WeatherSnapshot
	err   error
	calls int
}

func (s *stubProvider) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	s.calls++
	return s.snap, s.err
}

func TestCachedProviderPassesThroughWithoutRedis(t *testing.T) {
	stub := &stubProvider{snap: &models.WeatherSnapshot{Temperature: 29}}
	cached := NewCachedProvider(stub)

	snap, err := cached.Fetch(context.Background(), 18.52, 73.86)
	require.NoError(t, err)
	assert.Equal(t, 29.0, snap.Temperature)
	assert.Equal(t, 1, stub.calls)
}

func TestCachedProviderPropagatesFetchFailure(t *testing.T) {
	stub := &stubProvider{err: errors.New("boom")}
	cached := NewCachedProvider(stub)

	_, err := cached.Fetch(context.Background(), 18.52, 73.86)
	assert.Error(t, err)
}

func TestCacheKeyRoundsCoordinates(t *testing.T) {
	assert.Equal(t, "weather:18.52:73.86", cacheKey(18.5213, 73.8567))
	assert.Equal(t, cacheKey(18.521, 73.857), cacheKey(18.518, 73.862))
}
