package weather

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrimitra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeatherRejectsBadCoords(t *testing.T) {
	h := NewHandlers(&stubProvider{})

	for _, target := range []string{"/api/v1/weather", "/api/v1/weather?lat=abc&lon=73", "/api/v1/weather?lat=95&lon=73"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, target, nil)
		h.GetWeather(w, r, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestGetWeatherReturnsSnapshot(t *testing.T) {
	h := NewHandlers(&stubProvider{snap: &models.WeatherSnapshot{Temperature: 31}})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/weather?lat=18.52&lon=73.86", nil)
	h.GetWeather(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool                   `json:"success"`
		Weather models.WeatherSnapshot `json:"weather"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 31.0, body.Weather.Temperature)
}

func TestGetWeatherMapsProviderFailureToBadGateway(t *testing.T) {
	h := NewHandlers(&stubProvider{err: errors.New("provider down")})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/weather?lat=18.52&lon=73.86", nil)
	h.GetWeather(w, r, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
