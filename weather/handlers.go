package weather

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"agrimitra/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Handlers serves the weather endpoints off an injected provider.
type Handlers struct {
	Provider Provider
}

func NewHandlers(p Provider) *Handlers {
	return &Handlers{Provider: p}
}

func coordsFromQuery(r *http.Request) (float64, float64, bool) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

// GetWeather returns the current snapshot for lat/lon query params.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, lon, ok := coordsFromQuery(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid lat and lon query params are required")
		return
	}

	snap, err := h.Provider.Fetch(r.Context(), lat, lon)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather provider unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "weather": snap})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveWeather streams snapshot refreshes to the client until it disconnects.
// The cached provider makes the periodic fetch cheap.
func (h *Handlers) LiveWeather(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, lon, ok := coordsFromQuery(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Valid lat and lon query params are required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	send := func() bool {
		snap, err := h.Provider.Fetch(r.Context(), lat, lon)
		if err != nil {
			log.Printf("live weather fetch failed: %v", err)
			return true // keep the stream open, try again next tick
		}
		return conn.WriteJSON(snap) == nil
	}

	if !send() {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if !send() {
			return
		}
	}
}
