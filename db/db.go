package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection        *mongo.Collection
	CropsCollection       *mongo.Collection
	PricesCollection      *mongo.Collection
	PestReportsCollection *mongo.Collection

	Client *mongo.Client
)

// Connect dials MongoDB and wires the package-level collections. Call once
// from main before registering routes.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, err
	}

	Client = client
	agridb := client.Database("agrimitra")
	UserCollection = agridb.Collection("users")
	CropsCollection = agridb.Collection("crops")
	PricesCollection = agridb.Collection("prices")
	PestReportsCollection = agridb.Collection("pestreports")

	return client, nil
}

// Ctx returns a request-scoped context with the standard db timeout.
func Ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func OptionsFindLatest(limit int64) *options.FindOptions {
	opts := options.Find()
	opts.SetSort(bson.M{"createdAt": -1})
	opts.SetLimit(limit)
	return opts
}
