package bookingRepo

import (
	"context"

	"tripwise/database"
	"tripwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence capability for bookings. The service
// contract does not care about the storage medium; deployments pick the
// mongo-backed or in-memory implementation.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("tripwise")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
