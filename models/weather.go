package models

import "time"

type HourlyForecast struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"` // Celsius
	Humidity    float64   `json:"humidity"`    // percent
	Rainfall    float64   `json:"rainfall"`    // mm
}

type DailySummary struct {
	Date     time.Time `json:"date"`
	TempMin  float64   `json:"tempMin"`
	TempMax  float64   `json:"tempMax"`
	Humidity float64   `json:"humidity"`
	Rainfall float64   `json:"rainfall"`
}

// WeatherSnapshot is immutable once fetched; calculators treat it as pure input.
type WeatherSnapshot struct {
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Temperature float64          `json:"temperature"`
	Humidity    float64          `json:"humidity"`
	WindSpeed   float64          `json:"windSpeed"`
	Rainfall    float64          `json:"rainfall"`
	Hourly      []HourlyForecast `json:"hourly"` // next 24 entries
	Daily       []DailySummary   `json:"daily"`  // 7 entries
	FetchedAt   time.Time        `json:"fetchedAt"`
}

// Next24hRainfall sums forecast rain over the first 24 hourly entries.
func (w WeatherSnapshot) Next24hRainfall() float64 {
	var total float64
	n := len(w.Hourly)
	if n > 24 {
		n = 24
	}
	for i := 0; i < n; i++ {
		total += w.Hourly[i].Rainfall
	}
	return total
}
