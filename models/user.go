package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userid"        json:"userid"`
	Username     string             `bson:"username"      json:"username"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Village      string             `bson:"village,omitempty" json:"village,omitempty"`
	PasswordHash string             `bson:"passwordHash"  json:"-"`
	CreatedAt    time.Time          `bson:"createdAt"     json:"createdAt"`
}

type PestReport struct {
	ID           string           `bson:"id"             json:"id"`
	UserID       string           `bson:"userId"         json:"userId"`
	CropType     string           `bson:"cropType"       json:"cropType"`
	Notes        string           `bson:"notes,omitempty" json:"notes,omitempty"`
	ImageURL     string           `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ThumbnailURL string           `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	Risks        []RiskAssessment `bson:"risks,omitempty" json:"risks,omitempty"`
	CreatedAt    time.Time        `bson:"createdAt"      json:"createdAt"`
}
