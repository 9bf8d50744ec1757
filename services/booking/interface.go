package booking

import (
	"context"
	"errors"

	bookingRepo "tripwise/database/repository/booking"
	"tripwise/models"
)

// ErrAuthRequired is returned when a booking operation is invoked without a
// caller identity. Anonymous mode covers itinerary generation only; booking
// persistence is gated on a signed-in user.
var ErrAuthRequired = errors.New("authentication required for booking operations")

// BookingService owns the lifecycle of persisted bookings. Every write and
// every read passes through the shape validator.
type BookingService interface {
	Create(ctx context.Context, ownerID string, itinerary models.Itinerary) (*models.Booking, error)
	List(ctx context.Context, ownerID string) ([]models.Booking, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
