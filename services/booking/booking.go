package booking

import (
	"context"
	"fmt"
	"time"

	"tripwise/models"
	"tripwise/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create wraps a confirmed itinerary into a booking owned by ownerID. The
// itinerary is validated before it is accepted as the unit of persistence.
func (s *DefaultBookingService) Create(ctx context.Context, ownerID string, itinerary models.Itinerary) (*models.Booking, error) {
	if ownerID == "" {
		return nil, ErrAuthRequired
	}
	if err := models.ValidateItinerary(&itinerary); err != nil {
		return nil, fmt.Errorf("itinerary failed validation: %w", err)
	}

	booking := models.Booking{
		Itinerary:   itinerary,
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		BookingDate: time.Now().UTC().Format(time.RFC3339),
		Status:      models.BookingStatusConfirmed,
	}
	if err := models.ValidateBooking(&booking); err != nil {
		return nil, fmt.Errorf("booking failed validation: %w", err)
	}

	if _, err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	return &booking, nil
}

// List returns the owner's bookings ordered by booking date descending.
// Stored records that no longer validate are skipped with a warning rather
// than failing the whole listing.
func (s *DefaultBookingService) List(ctx context.Context, ownerID string) ([]models.Booking, error) {
	logger := utils.GetLogger()

	if ownerID == "" {
		return nil, ErrAuthRequired
	}
	stored, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(stored))
	for _, b := range stored {
		if err := models.ValidateBooking(&b); err != nil {
			logger.Warn("List: skipping invalid stored booking",
				zap.String("id", b.ID), zap.Error(err))
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Delete removes one of the owner's bookings. Deleting an absent ID is a
// no-op, so double-clicks and retries leave the list unchanged.
func (s *DefaultBookingService) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrAuthRequired
	}
	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
