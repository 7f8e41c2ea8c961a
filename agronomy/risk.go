package agronomy

import "agrimitra/models"

// riskRule is one disease/pest threshold rule: when Match returns true for the
// snapshot, OnScore applies, otherwise OffScore. These are discrete step
// functions, not a continuous model; the exact score pairs are the advisory
// contract.
type riskRule struct {
	Disease   string
	Match     func(tempC, humidityPct float64) bool
	OnScore   int
	OffScore  int
	Treatment string
}

var riskRules = map[string][]riskRule{
	"Grape": {
		{
			Disease:   "Downy Mildew",
			Match:     func(t, h float64) bool { return h > 80 && t < 28 },
			OnScore:   75,
			OffScore:  30,
			Treatment: "Spray Bordeaux mixture 1% or metalaxyl+mancozeb; open the canopy to improve airflow",
		},
		{
			Disease:   "Powdery Mildew",
			Match:     func(t, h float64) bool { return h >= 40 && h <= 70 && t > 20 && t < 30 },
			OnScore:   72,
			OffScore:  25,
			Treatment: "Dust sulphur 0.2% at 10-day intervals; avoid evening irrigation",
		},
		{
			Disease:   "Thrips",
			Match:     func(t, h float64) bool { return t > 30 && h < 50 },
			OnScore:   68,
			OffScore:  20,
			Treatment: "Install blue sticky traps; spray fipronil 0.1% if scarring appears on berries",
		},
	},
	"Tomato": {
		{
			Disease:   "Early/Late Blight",
			Match:     func(t, h float64) bool { return h > 80 && t > 18 && t < 26 },
			OnScore:   80,
			OffScore:  30,
			Treatment: "Spray chlorothalonil or mancozeb 0.25%; remove and burn infected leaves",
		},
		{
			Disease:   "Leaf Curl Virus",
			Match:     func(t, h float64) bool { return t > 32 && h < 60 },
			OnScore:   70,
			OffScore:  25,
			Treatment: "Control whitefly vector with yellow sticky traps and imidacloprid 0.03%",
		},
		{
			Disease:   "Fruit Borer",
			Match:     func(t, h float64) bool { return t > 25 && t < 35 },
			OnScore:   65,
			OffScore:  30,
			Treatment: "Pheromone traps 5/acre; spray spinosad 0.015% at flowering",
		},
	},
	"Onion": {
		{
			Disease:   "Purple Blotch",
			Match:     func(t, h float64) bool { return h > 85 && t > 21 && t < 30 },
			OnScore:   78,
			OffScore:  28,
			Treatment: "Spray mancozeb 0.25% + sticker; widen spacing in the next planting",
		},
		{
			Disease:   "Stemphylium Blight",
			Match:     func(t, h float64) bool { return h > 75 && t > 18 && t < 27 },
			OnScore:   72,
			OffScore:  30,
			Treatment: "Alternate iprodione and azoxystrobin sprays; avoid overhead watering",
		},
		{
			Disease:   "Thrips",
			Match:     func(t, h float64) bool { return t > 28 && h < 60 },
			OnScore:   75,
			OffScore:  35,
			Treatment: "Spray profenofos 0.1%; two irrigations in quick succession knock populations down",
		},
	},
}

// Tier thresholds applied to every rule's score.
const (
	highTierCutoff     = 70 // strictly above
	moderateTierCutoff = 40 // at or above
)

func riskTier(score int) string {
	switch {
	case score > highTierCutoff:
		return "High"
	case score >= moderateTierCutoff:
		return "Moderate"
	default:
		return "Low"
	}
}

// ScoreRisks evaluates every disease/pest rule for the crop type against the
// snapshot. Unknown crop types use the default crop's rule set, consistent
// with the stage-table fallback.
func ScoreRisks(cropType string, weather models.WeatherSnapshot) []models.RiskAssessment {
	rules, ok := riskRules[cropType]
	if !ok {
		rules = riskRules[defaultCropType]
	}

	assessments := make([]models.RiskAssessment, 0, len(rules))
	for _, rule := range rules {
		score := rule.OffScore
		if rule.Match(weather.Temperature, weather.Humidity) {
			score = rule.OnScore
		}
		assessments = append(assessments, models.RiskAssessment{
			Disease:   rule.Disease,
			Score:     score,
			Tier:      riskTier(score),
			Treatment: rule.Treatment,
		})
	}
	return assessments
}
