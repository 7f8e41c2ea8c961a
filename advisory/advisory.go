package advisory

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"agrimitra/agronomy"
	"agrimitra/crops"
	"agrimitra/market"
	"agrimitra/utils"
	"agrimitra/weather"

	"github.com/julienschmidt/httprouter"
)

// Handlers composes the decision engine with the weather and market
// collaborators. Both are constructor-injected so tests can stub them.
type Handlers struct {
	Weather weather.Provider
	Market  market.Source
	Jitter  agronomy.RandomSource
	Now     func() time.Time
}

func NewHandlers(wp weather.Provider, ms market.Source) *Handlers {
	return &Handlers{
		Weather: wp,
		Market:  ms,
		Jitter:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:     time.Now,
	}
}

// GetAdvisory builds the full assembled advisory for one crop. A weather
// failure short-circuits with an error envelope; advisories are never built
// from partial data.
func (h *Handlers) GetAdvisory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := crops.LoadOwned(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	snap, err := h.Weather.Fetch(r.Context(), crop.Latitude, crop.Longitude)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather provider unavailable; advisory not computed")
		return
	}

	quote, err := h.Market.Quote(r.Context(), crop.CropType)
	if err != nil {
		// market degradation is tolerated; the assembler defaults the quote
		log.Printf("market quote failed for %s: %v", crop.CropType, err)
		quote = nil
	}

	adv, err := agronomy.BuildAdvisory(*crop, snap, quote, h.Now(), h.Jitter)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Advisory unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "advisory": adv})
}

// GetIrrigation returns just the water-balance recommendation.
func (h *Handlers) GetIrrigation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := crops.LoadOwned(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	snap, err := h.Weather.Fetch(r.Context(), crop.Latitude, crop.Longitude)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather provider unavailable")
		return
	}

	rec := agronomy.RecommendIrrigation(*crop, *snap, h.Now(), h.Jitter)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "irrigation": rec})
}

// GetRisks returns the disease/pest assessments for current weather.
func (h *Handlers) GetRisks(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := crops.LoadOwned(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	snap, err := h.Weather.Fetch(r.Context(), crop.Latitude, crop.Longitude)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Weather provider unavailable")
		return
	}

	risks := agronomy.ScoreRisks(crop.CropType, *snap)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "risks": risks})
}

// GetHarvestPlan returns sell-now/hold trade-off scenarios.
func (h *Handlers) GetHarvestPlan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	crop, code, msg := crops.LoadOwned(r, ps)
	if crop == nil {
		utils.RespondWithError(w, code, msg)
		return
	}

	quote, err := h.Market.Quote(r.Context(), crop.CropType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch market quote")
		return
	}

	scenarios := agronomy.PlanHarvest(*crop, quote)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "scenarios": scenarios})
}
