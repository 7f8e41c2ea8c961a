package agronomy

import (
	"testing"

	"agrimitra/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHarvestSellNowMatchesQuote(t *testing.T) {
	crop := models.Crop{CropType: "Onion", FarmSizeAcres: 2, ExpectedYieldQtl: 10, HealthScore: 90}
	quote := &models.MarketQuote{Price: 2000, Change: "+7%"}

	scenarios := PlanHarvest(crop, quote)
	require.Len(t, scenarios, 3)

	now := scenarios[0]
	assert.Equal(t, "Sell now", now.Label)
	assert.Equal(t, 0, now.WaitDays)
	assert.Equal(t, 2000.0, now.ExpectedPrice)
	assert.Equal(t, 20000.0, now.GrossRevenue)
	assert.Equal(t, 0.0, now.StorageCost)
	assert.Equal(t, 0.0, now.SpoilageLoss)
	assert.Equal(t, 20000.0, now.NetRevenue)
}

func TestPlanHarvestRisingTrendLiftsHoldPrice(t *testing.T) {
	crop := models.Crop{CropType: "Onion", FarmSizeAcres: 2, ExpectedYieldQtl: 10, HealthScore: 90}
	quote := &models.MarketQuote{Price: 2000, Change: "+7%"}

	scenarios := PlanHarvest(crop, quote)
	assert.InDelta(t, 2140.0, scenarios[1].ExpectedPrice, 0.01) // one weekly step
	assert.Greater(t, scenarios[2].ExpectedPrice, scenarios[1].ExpectedPrice)
	assert.Greater(t, scenarios[1].StorageCost, 0.0)
	assert.Greater(t, scenarios[1].SpoilageLoss, 0.0)
}

func TestPlanHarvestPerishableCropSpoilsFaster(t *testing.T) {
	quote := &models.MarketQuote{Price: 2000, Change: "0%"}
	tomato := models.Crop{CropType: "Tomato", FarmSizeAcres: 2, ExpectedYieldQtl: 10, HealthScore: 90}
	onion := models.Crop{CropType: "Onion", FarmSizeAcres: 2, ExpectedYieldQtl: 10, HealthScore: 90}

	tomatoHold := PlanHarvest(tomato, quote)[2]
	onionHold := PlanHarvest(onion, quote)[2]

	assert.Greater(t, tomatoHold.SpoilageLoss, onionHold.SpoilageLoss)
}

func TestPlanHarvestWithoutQuoteUsesZeroPrice(t *testing.T) {
	crop := models.Crop{CropType: "Grape", FarmSizeAcres: 1, ExpectedYieldQtl: 5, HealthScore: 80}

	scenarios := PlanHarvest(crop, nil)
	require.Len(t, scenarios, 3)
	for _, s := range scenarios {
		assert.Equal(t, 0.0, s.ExpectedPrice)
		assert.Equal(t, 0.0, s.GrossRevenue)
	}
}

func TestPlanHarvestEstimatesYieldWhenUnset(t *testing.T) {
	crop := models.Crop{CropType: "Onion", FarmSizeAcres: 2, HealthScore: 50}
	quote := &models.MarketQuote{Price: 1000, Change: "0%"}

	// fallback yield: 80 * 2 acres * 50% health = 80 quintals
	scenarios := PlanHarvest(crop, quote)
	assert.Equal(t, 80000.0, scenarios[0].GrossRevenue)
}

func TestTrendPercentParsing(t *testing.T) {
	assert.Equal(t, 4.2, trendPercent("+4.2%"))
	assert.Equal(t, -1.8, trendPercent("-1.8%"))
	assert.Equal(t, 0.0, trendPercent("n/a"))
	assert.Equal(t, 0.0, trendPercent(""))
}
