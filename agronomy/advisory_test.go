package agronomy

import (
	"testing"
	"time"

	"agrimitra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAdvisoryRequiresWeather(t *testing.T) {
	crop := cropAtDAP("Tomato", "Loamy", 3, 40, date(2024, time.April, 10))

	_, err := BuildAdvisory(crop, nil, nil, date(2024, time.April, 10), fixedRand{})
	assert.ErrorIs(t, err, ErrNoWeather)
}

func TestBuildAdvisoryComposesAllSections(t *testing.T) {
	asOf := date(2024, time.April, 10)
	crop := cropAtDAP("Tomato", "Loamy", 3, 40, asOf)
	snap := snapshotWith(30, 50, 0)
	quote := &models.MarketQuote{CropType: "Tomato", Mandi: "Nashik", Price: 1850, Change: "+4.2%"}

	adv, err := BuildAdvisory(crop, &snap, quote, asOf, fixedRand{})
	require.NoError(t, err)

	assert.Equal(t, "Flowering", adv.Stage.StageName)
	assert.NotEmpty(t, adv.WeeklyTasks)
	assert.Equal(t, "IRRIGATE", adv.Irrigation.Action)
	assert.Len(t, adv.Risks, 3)
	assert.Equal(t, "UP", adv.Market.Trend)
	assert.Equal(t, 1850.0, adv.Market.Price)
}

func TestMarketAdviceDefaultsWhenQuoteMissing(t *testing.T) {
	advice := marketAdvice("Tomato", nil)
	assert.Equal(t, 0.0, advice.Price)
	assert.Equal(t, "DOWN", advice.Trend)
	assert.NotEmpty(t, advice.Recommendation)
}

func TestMarketAdviceTrendSign(t *testing.T) {
	up := marketAdvice("Onion", &models.MarketQuote{Price: 2400, Mandi: "Lasalgaon", Change: "+1.2%"})
	assert.Equal(t, "UP", up.Trend)

	down := marketAdvice("Onion", &models.MarketQuote{Price: 2400, Mandi: "Lasalgaon", Change: "-1.8%"})
	assert.Equal(t, "DOWN", down.Trend)
}

func TestWeeklyTaskListFallsBackToGeneric(t *testing.T) {
	known := WeeklyTaskList("Tomato", "Flowering")
	assert.Contains(t, known[0], "overhead watering")

	generic := WeeklyTaskList("Dragonfruit", "Whatever")
	assert.Equal(t, genericTasks, generic)
}
