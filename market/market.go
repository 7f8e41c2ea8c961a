package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"agrimitra/db"
	"agrimitra/models"
	"agrimitra/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const quoteCacheTTL = 15 * time.Minute

// Source supplies mandi quotes for a crop type. Injected into the advisory
// handlers; a nil quote (no entry) is a valid answer, not an error.
type Source interface {
	Quote(ctx context.Context, cropType string) (*models.MarketQuote, error)
}

// MongoSource reads quotes from the prices collection with a redis cache in
// front.
type MongoSource struct{}

func NewMongoSource() *MongoSource {
	return &MongoSource{}
}

func quoteCacheKey(cropType string) string {
	return "market:quote:" + cropType
}

func (s *MongoSource) Quote(ctx context.Context, cropType string) (*models.MarketQuote, error) {
	key := quoteCacheKey(cropType)

	if rdx.Conn != nil {
		if val, err := rdx.Conn.Get(ctx, key).Result(); err == nil && val != "" {
			var quote models.MarketQuote
			if err := json.Unmarshal([]byte(val), &quote); err == nil {
				return &quote, nil
			}
		}
	}

	var quote models.MarketQuote
	err := db.PricesCollection.FindOne(ctx, bson.M{"cropType": cropType}).Decode(&quote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("market quote: %w", err)
	}

	if rdx.Conn != nil {
		if jsonBytes, err := json.Marshal(quote); err == nil {
			_ = rdx.Conn.Set(ctx, key, jsonBytes, quoteCacheTTL).Err()
		}
	}
	return &quote, nil
}

// SeasonalAggregate folds a quote's price history into per-month min/avg/max
// rows, oldest month first.
func SeasonalAggregate(history []models.PricePoint) []models.SeasonalPrice {
	type bucket struct {
		sum, min, max float64
		n             int
	}
	buckets := map[string]*bucket{}

	for _, p := range history {
		month := p.Date.Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{min: p.Price, max: p.Price}
			buckets[month] = b
		}
		b.sum += p.Price
		b.n++
		if p.Price < b.min {
			b.min = p.Price
		}
		if p.Price > b.max {
			b.max = p.Price
		}
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]models.SeasonalPrice, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		out = append(out, models.SeasonalPrice{
			Month:    m,
			Average:  b.sum / float64(b.n),
			Min:      b.min,
			Max:      b.max,
			Readings: b.n,
		})
	}
	return out
}

// seedHistory backfills fortnightly price points over the preceding months,
// walking back from the current price against the quoted weekly trend so the
// series lands on today's quote.
func seedHistory(now time.Time, price float64, change string, months int) []models.PricePoint {
	weeklyStep := 1 + trendFraction(change)
	points := make([]models.PricePoint, 0, months*2)
	for i := months * 2; i >= 1; i-- {
		date := now.AddDate(0, 0, -14*i)
		past := price / math.Pow(weeklyStep, float64(14*i)/7)
		points = append(points, models.PricePoint{Date: date, Price: round2(past)})
	}
	return points
}

func trendFraction(change string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(change), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v / 100
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// seedQuotes builds the starter mandi quotes, each with a few months of
// history so the seasonal aggregation endpoint has data out of the box.
func seedQuotes(now time.Time) []models.MarketQuote {
	return []models.MarketQuote{
		{CropType: "Tomato", Mandi: "Nashik", Price: 1850, Unit: "quintal", Change: "+4.2%", History: seedHistory(now, 1850, "+4.2%", 4), UpdatedAt: now},
		{CropType: "Onion", Mandi: "Lasalgaon", Price: 2400, Unit: "quintal", Change: "-1.8%", History: seedHistory(now, 2400, "-1.8%", 4), UpdatedAt: now},
		{CropType: "Grape", Mandi: "Sangli", Price: 5200, Unit: "quintal", Change: "+2.5%", History: seedHistory(now, 5200, "+2.5%", 4), UpdatedAt: now},
	}
}

// Seed inserts starter mandi quotes when the prices collection is empty, so a
// fresh deployment serves advisories immediately.
func Seed(ctx context.Context) error {
	count, err := db.PricesCollection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return err
	}

	quotes := seedQuotes(time.Now())
	docs := make([]interface{}, len(quotes))
	for i, q := range quotes {
		docs[i] = q
	}
	_, err = db.PricesCollection.InsertMany(ctx, docs)
	return err
}
