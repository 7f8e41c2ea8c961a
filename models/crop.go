package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SoilSample struct {
	PH         float64 `bson:"ph"         json:"ph"`
	Nitrogen   float64 `bson:"nitrogen"   json:"nitrogen"`
	Phosphorus float64 `bson:"phosphorus" json:"phosphorus"`
	Potassium  float64 `bson:"potassium"  json:"potassium"`
}

type ActivityEntry struct {
	ID       string    `bson:"id"              json:"id"`
	Type     string    `bson:"type"            json:"type"` // sowing, spraying, weeding, fertilizing, irrigation
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
	LoggedAt time.Time `bson:"loggedAt"        json:"loggedAt"`
}

type CostEntry struct {
	ID       string    `bson:"id"       json:"id"`
	Category string    `bson:"category" json:"category"` // seeds, fertilizer, labour, fuel
	Amount   float64   `bson:"amount"   json:"amount"`
	LoggedAt time.Time `bson:"loggedAt" json:"loggedAt"`
}

type Crop struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"          json:"id"`
	OwnerID          string             `bson:"ownerId"                json:"ownerId"`
	CropType         string             `bson:"cropType"               json:"cropType"` // Grape, Onion, Tomato, ...
	Variety          string             `bson:"variety,omitempty"      json:"variety,omitempty"`
	PlantingDate     time.Time          `bson:"plantingDate"           json:"plantingDate"`
	FarmSizeAcres    float64            `bson:"farmSizeAcres"          json:"farmSizeAcres"`
	IrrigationMethod string             `bson:"irrigationMethod"       json:"irrigationMethod"` // drip, sprinkler, flood
	SoilType         string             `bson:"soilType,omitempty"     json:"soilType,omitempty"`
	HealthScore      int                `bson:"healthScore"            json:"healthScore"` // 0-100
	Soil             *SoilSample        `bson:"soil,omitempty"         json:"soil,omitempty"`
	Latitude         float64            `bson:"latitude,omitempty"     json:"latitude,omitempty"`
	Longitude        float64            `bson:"longitude,omitempty"    json:"longitude,omitempty"`
	ExpectedYieldQtl float64            `bson:"expectedYieldQtl,omitempty" json:"expectedYieldQtl,omitempty"`
	Activities       []ActivityEntry    `bson:"activities,omitempty"   json:"activities,omitempty"`
	Costs            []CostEntry        `bson:"costs,omitempty"        json:"costs,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"              json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"              json:"updatedAt"`
}

type Milestone struct {
	StageName    string    `json:"stageName"`
	Description  string    `json:"description"`
	ExpectedDate time.Time `json:"expectedDate"`
	Status       string    `json:"status"` // pending, active, completed
}
