package agronomy

import (
	"fmt"
	"math"
	"time"

	"agrimitra/models"
)

// RandomSource supplies the jitter applied to the display-only moisture
// estimate. Injecting it keeps the calculator deterministic under test;
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Decision/threshold constants for the water-balance policy. These are the
// behavioral contract of the advisory; changing them changes recommendations.
const (
	heavyRainCutoffMM  = 10.0 // forecast rain above this skips irrigation
	heatStressCutoffC  = 37.0 // above this, irrigate regardless of deficit
	heatDurationFactor = 1.35
	deficitFloorMM     = 1.0 // below this, existing moisture suffices
	minutesPerMM       = 15.0
	referenceAcres     = 3.0 // duration constant is calibrated per 3-acre plot
	runoffRetention    = 0.7 // 30% of forecast rain assumed lost to runoff
)

// soilFactor is a water-holding-capacity proxy per soil type.
func soilFactor(soilType string) float64 {
	switch soilType {
	case "Black":
		return 1.2
	case "Sandy":
		return 0.8
	default: // Loamy and anything else
		return 1.0
	}
}

// ReferenceET estimates reference evapotranspiration (mm/day) from temperature
// and humidity. This is an empirical linear proxy, not Penman-Monteith proper.
func ReferenceET(temperatureC, humidityPct float64) float64 {
	return temperatureC*0.16 + (100-humidityPct)*0.06
}

// RecommendIrrigation computes the water balance for one crop against a
// weather snapshot and returns an irrigate/skip/delay decision.
//
// The decision branches are evaluated in a fixed precedence order: heavy
// forecast rain first, then heat stress, then deficit sufficiency. The heat
// branch deliberately precedes the deficit check, so a well-watered field in a
// heatwave still gets an IRRIGATE with the compensation factor applied.
func RecommendIrrigation(crop models.Crop, weather models.WeatherSnapshot, asOf time.Time, jitter RandomSource) models.IrrigationRecommendation {
	stage := CalculateStage(crop.CropType, crop.PlantingDate, asOf)

	eto := ReferenceET(weather.Temperature, weather.Humidity)
	kc := CropCoefficient(crop.CropType, stage.StageName)
	etc := eto * kc

	rain24 := weather.Next24hRainfall()
	effectiveRainfall := rain24 * runoffRetention
	waterDeficit := etc*soilFactor(crop.SoilType) - effectiveRainfall

	baseDuration := math.Max(0, waterDeficit) * minutesPerMM * crop.FarmSizeAcres / referenceAcres

	rec := models.IrrigationRecommendation{
		ETc:              round2(etc),
		WaterDeficit:     round2(waterDeficit),
		MoistureEstimate: moistureEstimate(waterDeficit, jitter),
	}

	switch {
	case rain24 > heavyRainCutoffMM:
		rec.Action = "SKIP"
		rec.DurationMinutes = 0
		rec.Reason = fmt.Sprintf("%.1fmm rain forecast in next 24h; irrigating now risks waterlogging", rain24)
	case weather.Temperature > heatStressCutoffC:
		rec.Action = "IRRIGATE"
		rec.DurationMinutes = int(math.Round(baseDuration * heatDurationFactor))
		rec.Reason = fmt.Sprintf("heat stress at %.0f°C; extended run to compensate for evaporative loss", weather.Temperature)
	case waterDeficit < deficitFloorMM:
		rec.Action = "DELAY"
		rec.DurationMinutes = 0
		rec.Reason = "soil moisture sufficient; re-check after next weather update"
	default:
		rec.Action = "IRRIGATE"
		rec.DurationMinutes = int(math.Round(baseDuration))
		rec.Reason = fmt.Sprintf("water deficit %.1fmm at %s stage", waterDeficit, stage.StageName)
	}
	return rec
}

// moistureEstimate produces the display percentage shown next to the
// recommendation. It tracks the deficit with a small injected jitter standing
// in for an actual soil probe.
func moistureEstimate(waterDeficit float64, jitter RandomSource) int {
	base := 85 - waterDeficit*4
	if jitter != nil {
		base += (jitter.Float64() - 0.5) * 10
	}
	m := int(math.Round(base))
	if m < 5 {
		m = 5
	}
	if m > 95 {
		m = 95
	}
	return m
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
