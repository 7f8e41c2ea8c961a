package models

import "time"

type PricePoint struct {
	Date  time.Time `json:"date"  bson:"date"`
	Price float64   `json:"price" bson:"price"`
}

// MarketQuote is the current mandi price for one crop type.
// Change carries a signed percent string, e.g. "+4.2%" or "-1.8%".
type MarketQuote struct {
	CropType  string       `json:"cropType"  bson:"cropType"`
	Mandi     string       `json:"mandi"     bson:"mandi"`
	Price     float64      `json:"price"     bson:"price"` // Rs per quintal
	Unit      string       `json:"unit"      bson:"unit"`
	Change    string       `json:"change"    bson:"change"`
	History   []PricePoint `json:"history,omitempty" bson:"history,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// SeasonalPrice is one month's aggregate over a quote's price history.
type SeasonalPrice struct {
	Month    string  `json:"month"` // "2024-03"
	Average  float64 `json:"average"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Readings int     `json:"readings"`
}
