package bookingRepo

import (
	"context"

	"tripwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// ListByOwner fetches all bookings belonging to a user, newest first.
func (r *mongoBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "bookingDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Delete removes a booking by ID, scoped to its owner. Deleting an ID that is
// not present is a no-op, so retries and stale UI state are harmless.
func (r *mongoBookingRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "ownerId": ownerID})
	return err
}
