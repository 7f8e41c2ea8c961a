package home

import (
	"net/http"
	"strings"
	"time"

	"agrimitra/agronomy"
	"agrimitra/utils"

	"github.com/julienschmidt/httprouter"
)

// GetHomeContent handles the dashboard endpoints under /home/:apiRoute
func GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apiRoute := strings.ToLower(ps.ByName("apiRoute"))

	var data interface{}
	switch apiRoute {
	case "crop-types":
		data = agronomy.SupportedCropTypes()
	case "mandis":
		data = getMandis()
	case "seasonal-tips":
		data = getSeasonalTips(time.Now().Month())
	default:
		http.Error(w, "Invalid API route", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": data})
}

// getMandis returns the markets we carry quotes for.
func getMandis() []map[string]string {
	return []map[string]string{
		{"name": "Nashik", "state": "Maharashtra", "speciality": "Tomato"},
		{"name": "Lasalgaon", "state": "Maharashtra", "speciality": "Onion"},
		{"name": "Sangli", "state": "Maharashtra", "speciality": "Grape"},
	}
}

// getSeasonalTips returns farming tips keyed to the current month.
func getSeasonalTips(month time.Month) []string {
	switch {
	case month >= time.June && month <= time.September:
		return []string{
			"Clear drainage channels before heavy monsoon spells",
			"Scout for fungal disease after every 2+ days of cloud cover",
			"Stagger transplanting around forecast rain windows",
		}
	case month >= time.October || month <= time.February:
		return []string{
			"Rabi sowing window is open; check the crop suggestions endpoint",
			"Watch night temperatures; frost stresses young seedlings",
			"Cut irrigation frequency as evapotranspiration drops",
		}
	default:
		return []string{
			"Pre-summer: mulch to conserve soil moisture",
			"Service pumps and drip lines before peak demand",
			"Heat above 37°C triggers extended irrigation runs",
		}
	}
}
