package crops

import (
	"net/http"
	"time"

	"agrimitra/agronomy"
	"agrimitra/utils"

	"github.com/julienschmidt/httprouter"
)

type cropSuggestion struct {
	CropType   string `json:"cropType"`
	Season     string `json:"season"`
	CycleDays  int    `json:"cycleDays"`
	SoilAdvice string `json:"soilAdvice"`
}

// Sowing-window lookup by month. Kharif runs with the monsoon (Jun-Sep), rabi
// over winter (Oct-Feb).
var sowingCalendar = map[time.Month][]cropSuggestion{
	time.January:   {{CropType: "Tomato", Season: "rabi", SoilAdvice: "Loamy soil with drip lines gives the best fruit set"}},
	time.February:  {{CropType: "Onion", Season: "late rabi", SoilAdvice: "Avoid waterlogged plots; onions bulb poorly in heavy clay"}},
	time.June:      {{CropType: "Tomato", Season: "kharif", SoilAdvice: "Raised beds help drainage through monsoon spells"}, {CropType: "Onion", Season: "kharif", SoilAdvice: "Transplant after the first heavy rains pass"}},
	time.July:      {{CropType: "Onion", Season: "kharif", SoilAdvice: "Transplant 6-week nursery seedlings"}},
	time.October:   {{CropType: "Onion", Season: "rabi", SoilAdvice: "Black soil holds moisture well through winter"}, {CropType: "Tomato", Season: "rabi", SoilAdvice: "Protect seedlings from early cold snaps"}},
	time.November:  {{CropType: "Grape", Season: "pruning window", SoilAdvice: "Forward-prune now for an April harvest"}},
	time.December:  {{CropType: "Tomato", Season: "rabi", SoilAdvice: "Mulch to keep root-zone temperature up"}},
}

// SuggestCrops returns planting suggestions for the current month.
func SuggestCrops(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	month := time.Now().Month()
	if m := utils.ParseInt(r.URL.Query().Get("month")); m >= 1 && m <= 12 {
		month = time.Month(m)
	}

	suggestions := sowingCalendar[month]
	if suggestions == nil {
		suggestions = []cropSuggestion{}
	}
	for i := range suggestions {
		suggestions[i].CycleDays = agronomy.CycleLength(suggestions[i].CropType)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":     true,
		"month":       month.String(),
		"suggestions": suggestions,
	})
}
