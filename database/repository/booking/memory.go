package bookingRepo

import (
	"context"
	"sort"
	"sync"

	"tripwise/models"

	"github.com/google/uuid"
)

// memoryBookingRepo keeps bookings in process memory, keyed by owner. It is
// the anonymous/local deployment variant of the booking store and the
// fixture used by service tests.
type memoryBookingRepo struct {
	mu      sync.RWMutex
	byOwner map[string][]models.Booking
}

// NewMemoryBookingRepo returns an in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{byOwner: make(map[string][]models.Booking)}
}

func (r *memoryBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	r.byOwner[booking.OwnerID] = append(r.byOwner[booking.OwnerID], booking)
	return booking.ID, nil
}

func (r *memoryBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byOwner[ownerID]
	out := make([]models.Booking, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].BookingDate > out[j].BookingDate
	})
	return out, nil
}

func (r *memoryBookingRepo) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byOwner[ownerID]
	for i, b := range stored {
		if b.ID == id {
			r.byOwner[ownerID] = append(stored[:i], stored[i+1:]...)
			return nil
		}
	}
	return nil
}
