package bookingRepo

import (
	"context"
	"time"

	"tripwise/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureBookingIndexes creates the indexes the listing query depends on.
func EnsureBookingIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.MongoClient.Database("tripwise").Collection("bookings")
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "bookingDate", Value: -1}}},
	})
	return err
}
