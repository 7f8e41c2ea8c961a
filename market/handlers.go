package market

import (
	"net/http"

	"agrimitra/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	Source Source
}

func NewHandlers(s Source) *Handlers {
	return &Handlers{Source: s}
}

// GetQuote returns the current mandi quote for a crop type.
func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cropType := ps.ByName("croptype")

	quote, err := h.Source.Quote(r.Context(), cropType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch market quote")
		return
	}
	if quote == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No mandi quote for "+cropType)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "quote": quote})
}

// GetSeasonalHistory returns the monthly aggregation of a quote's history.
func (h *Handlers) GetSeasonalHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cropType := ps.ByName("croptype")

	quote, err := h.Source.Quote(r.Context(), cropType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch market history")
		return
	}
	if quote == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No mandi quote for "+cropType)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"cropType": cropType,
		"seasonal": SeasonalAggregate(quote.History),
	})
}
