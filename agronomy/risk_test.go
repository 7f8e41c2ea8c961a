package agronomy

import (
	"testing"

	"agrimitra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findAssessment(t *testing.T, assessments []models.RiskAssessment, disease string) models.RiskAssessment {
	t.Helper()
	for _, a := range assessments {
		if a.Disease == disease {
			return a
		}
	}
	require.Failf(t, "missing assessment", "no entry for %s", disease)
	return models.RiskAssessment{}
}

func TestGrapeDownyMildewTriggers(t *testing.T) {
	risks := ScoreRisks("Grape", models.WeatherSnapshot{Humidity: 85, Temperature: 24})

	downy := findAssessment(t, risks, "Downy Mildew")
	assert.Equal(t, 75, downy.Score)
	assert.Equal(t, "High", downy.Tier)
	assert.NotEmpty(t, downy.Treatment)
}

func TestGrapeDownyMildewQuietInDryAir(t *testing.T) {
	risks := ScoreRisks("Grape", models.WeatherSnapshot{Humidity: 50, Temperature: 24})

	downy := findAssessment(t, risks, "Downy Mildew")
	assert.Equal(t, 30, downy.Score)
	assert.Equal(t, "Low", downy.Tier)
}

func TestTomatoBlightWindow(t *testing.T) {
	inWindow := ScoreRisks("Tomato", models.WeatherSnapshot{Humidity: 88, Temperature: 22})
	blight := findAssessment(t, inWindow, "Early/Late Blight")
	assert.Equal(t, 80, blight.Score)
	assert.Equal(t, "High", blight.Tier)

	tooHot := ScoreRisks("Tomato", models.WeatherSnapshot{Humidity: 88, Temperature: 30})
	blight = findAssessment(t, tooHot, "Early/Late Blight")
	assert.Equal(t, 30, blight.Score)
	assert.Equal(t, "Low", blight.Tier)
}

func TestOnionThripsInHotDryWeather(t *testing.T) {
	risks := ScoreRisks("Onion", models.WeatherSnapshot{Humidity: 45, Temperature: 33})

	thrips := findAssessment(t, risks, "Thrips")
	assert.Equal(t, 75, thrips.Score)
	assert.Equal(t, "High", thrips.Tier)
}

func TestUnknownCropFallsBackToDefaultRules(t *testing.T) {
	snap := models.WeatherSnapshot{Humidity: 88, Temperature: 22}
	assert.Equal(t, ScoreRisks("Tomato", snap), ScoreRisks("Dragonfruit", snap))
}

func TestRiskTierBoundaries(t *testing.T) {
	assert.Equal(t, "High", riskTier(71))
	assert.Equal(t, "Moderate", riskTier(70))
	assert.Equal(t, "Moderate", riskTier(40))
	assert.Equal(t, "Low", riskTier(39))
}

func TestEveryRuleSetCoversEveryCrop(t *testing.T) {
	for _, cropType := range SupportedCropTypes() {
		risks := ScoreRisks(cropType, models.WeatherSnapshot{Humidity: 60, Temperature: 25})
		assert.NotEmpty(t, risks, "%s has no risk rules", cropType)
		for _, a := range risks {
			assert.NotEmpty(t, a.Treatment, "%s/%s missing treatment text", cropType, a.Disease)
		}
	}
}
