package agronomy

import (
	"math"
	"strconv"
	"strings"

	"agrimitra/models"
)

// Per-crop hold modelling: storage cost per quintal per day, and the daily
// spoilage fraction applied to held stock.
var holdProfiles = map[string]struct {
	StorageCostPerQtlDay float64
	SpoilagePerDay       float64
}{
	"Tomato": {StorageCostPerQtlDay: 4.0, SpoilagePerDay: 0.030}, // perishable
	"Grape":  {StorageCostPerQtlDay: 6.0, SpoilagePerDay: 0.020},
	"Onion":  {StorageCostPerQtlDay: 1.5, SpoilagePerDay: 0.004}, // cures well
}

var defaultHoldProfile = struct {
	StorageCostPerQtlDay float64
	SpoilagePerDay       float64
}{StorageCostPerQtlDay: 3.0, SpoilagePerDay: 0.015}

// trendPercent parses the signed percent out of a quote change string like
// "+4.2%". Unparseable input reads as 0.
func trendPercent(change string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(change), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// PlanHarvest models sell-now versus hold options for a crop's expected yield
// at the current quote. The hold scenarios project the quote's weekly trend
// forward and net out storage cost and spoilage, so a rising market can still
// lose to spoilage on perishable crops.
func PlanHarvest(crop models.Crop, quote *models.MarketQuote) []models.HarvestScenario {
	yield := crop.ExpectedYieldQtl
	if yield <= 0 {
		// fallback estimate: 80 quintals per acre, scaled by health
		yield = 80 * crop.FarmSizeAcres * float64(crop.HealthScore) / 100
	}

	price := 0.0
	trend := 0.0
	if quote != nil {
		price = quote.Price
		trend = trendPercent(quote.Change)
	}

	profile, ok := holdProfiles[crop.CropType]
	if !ok {
		profile = defaultHoldProfile
	}

	scenarios := make([]models.HarvestScenario, 0, 3)
	for _, waitDays := range []int{0, 7, 14} {
		// trend is quoted week-over-week; compound it per 7-day block
		expectedPrice := price * math.Pow(1+trend/100, float64(waitDays)/7)
		spoiled := yield * (1 - math.Pow(1-profile.SpoilagePerDay, float64(waitDays)))
		sellable := yield - spoiled

		gross := sellable * expectedPrice
		storage := yield * profile.StorageCostPerQtlDay * float64(waitDays)
		spoilageLoss := spoiled * expectedPrice

		s := models.HarvestScenario{
			WaitDays:      waitDays,
			ExpectedPrice: round2(expectedPrice),
			GrossRevenue:  round2(gross),
			StorageCost:   round2(storage),
			SpoilageLoss:  round2(spoilageLoss),
			NetRevenue:    round2(gross - storage),
		}
		switch waitDays {
		case 0:
			s.Label = "Sell now"
			s.Note = "Immediate sale at the current mandi quote"
		case 7:
			s.Label = "Hold 1 week"
			s.Note = "Projects the quoted weekly trend one period forward"
		default:
			s.Label = "Hold 2 weeks"
			s.Note = "Spoilage and storage compound; viable mainly for crops that cure"
		}
		scenarios = append(scenarios, s)
	}
	return scenarios
}
