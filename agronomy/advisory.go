package agronomy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agrimitra/models"
)

// ErrNoWeather means the assembler was asked to build an advisory without a
// usable weather snapshot. Advisories are never fabricated from partial data.
var ErrNoWeather = errors.New("agronomy: weather snapshot unavailable")

// weeklyTasks maps (crop type, stage name) to the task checklist shown for the
// week. Missing combinations fall back to a generic list.
var weeklyTasks = map[string]map[string][]string{
	"Tomato": {
		"Germination":          {"Maintain nursery moisture, water morning only", "Check seedlings for damping-off"},
		"Vegetative":           {"Stake plants before they flop", "Side-dress nitrogen", "Scout lower leaves for early blight"},
		"Flowering":            {"Stop overhead watering", "Spray micronutrient mix if flower drop is seen", "Hang pheromone traps"},
		"Fruit Development":    {"Keep irrigation steady to avoid fruit cracking", "Prune excess side shoots", "Check fruit for borer entry holes"},
		"Maturation & Harvest": {"Pick at colour break for distant mandis", "Reduce irrigation frequency", "Sort and grade before packing"},
	},
	"Onion": {
		"Germination":      {"Light daily irrigation", "Thin overcrowded lines"},
		"Vegetative":       {"First weeding", "Apply top-dress urea split"},
		"Bulb Initiation":  {"Stop nitrogen application", "Watch for purple blotch after cloudy days"},
		"Bulb Development": {"Irrigate at 7-10 day intervals", "Do not disturb soil near bulbs"},
		"Maturation":       {"Withhold irrigation 15 days before lifting", "Bend tops when half the field lodges"},
	},
	"Grape": {
		"Bud Development": {"Finish pruning and tie canes", "Apply hydrogen cyanamide if budbreak is uneven"},
		"Flowering":       {"Avoid all sprays during bloom hours", "Girdle trunks for berry size if practiced"},
		"Fruit Set":       {"Thin clusters to target count", "Begin downy mildew preventive schedule"},
		"Veraison":        {"Install bird netting", "Cut back irrigation to concentrate sugars"},
		"Harvest":         {"Sample brix every 2-3 days", "Harvest in early morning hours"},
	},
}

var genericTasks = []string{
	"Scout the field twice this week",
	"Check irrigation lines for blockages",
	"Record activities and costs in the log",
}

// WeeklyTaskList returns the stage-appropriate checklist for a crop.
func WeeklyTaskList(cropType, stageName string) []string {
	if byStage, ok := weeklyTasks[cropType]; ok {
		if tasks, ok := byStage[stageName]; ok {
			return tasks
		}
	}
	return genericTasks
}

// marketAdvice turns a quote into the trend narrative shown on the advisory
// card. A nil quote (no mandi entry for the crop) defaults to price 0 and a
// DOWN trend rather than failing.
func marketAdvice(cropType string, quote *models.MarketQuote) models.MarketAdvice {
	if quote == nil {
		return models.MarketAdvice{
			Price:          0,
			Trend:          "DOWN",
			Recommendation: fmt.Sprintf("No mandi quote available for %s; hold until prices are published", cropType),
		}
	}

	if strings.HasPrefix(quote.Change, "+") {
		return models.MarketAdvice{
			Price:          quote.Price,
			Trend:          "UP",
			Recommendation: fmt.Sprintf("Prices trending up (%s) at %s; good window to sell graded produce", quote.Change, quote.Mandi),
		}
	}
	return models.MarketAdvice{
		Price:          quote.Price,
		Trend:          "DOWN",
		Recommendation: fmt.Sprintf("Prices soft (%s) at %s; hold stock if storage allows", quote.Change, quote.Mandi),
	}
}

// BuildAdvisory composes stage, irrigation, risk and market outputs into the
// single per-crop payload the app renders. It refuses to proceed without
// weather data; every other input has a safe default.
func BuildAdvisory(crop models.Crop, weather *models.WeatherSnapshot, quote *models.MarketQuote, asOf time.Time, jitter RandomSource) (models.Advisory, error) {
	if weather == nil {
		return models.Advisory{}, ErrNoWeather
	}

	stage := CalculateStage(crop.CropType, crop.PlantingDate, asOf)

	return models.Advisory{
		CropID:      crop.ID.Hex(),
		CropType:    crop.CropType,
		Stage:       stage,
		WeeklyTasks: WeeklyTaskList(crop.CropType, stage.StageName),
		Irrigation:  RecommendIrrigation(crop, *weather, asOf, jitter),
		Risks:       ScoreRisks(crop.CropType, *weather),
		Market:      marketAdvice(crop.CropType, quote),
	}, nil
}
