package booking

import (
	"context"
	"testing"

	bookingRepo "tripwise/database/repository/booking"
	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItinerary() models.Itinerary {
	return models.Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           3,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days: []models.ItineraryDay{
			{
				Day:   1,
				Title: "Beach Day",
				Activities: []models.ItineraryActivity{
					{PlaceName: "Baga Beach", Description: "Relax on the sand."},
				},
			},
		},
	}
}

func newTestService() (*DefaultBookingService, bookingRepo.BookingRepository) {
	repo := bookingRepo.NewMemoryBookingRepo()
	return &DefaultBookingService{Repo: repo}, repo
}

func TestCreateRequiresIdentity(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "", testItinerary())
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateBuildsConfirmedBooking(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), "user-1", testItinerary())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.NotEmpty(t, created.BookingDate)
}

func TestCreateRejectsInvalidItinerary(t *testing.T) {
	svc, _ := newTestService()

	bad := testItinerary()
	bad.Destination = ""
	_, err := svc.Create(context.Background(), "user-1", bad)
	require.Error(t, err)

	bookings, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc, repo := newTestService()

	older := models.Booking{
		Itinerary:   testItinerary(),
		ID:          "older",
		OwnerID:     "user-1",
		BookingDate: "2025-01-01T10:00:00Z",
		Status:      models.BookingStatusConfirmed,
	}
	newer := older
	newer.ID = "newer"
	newer.BookingDate = "2025-02-01T10:00:00Z"

	_, err := repo.Create(context.Background(), older)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), newer)
	require.NoError(t, err)

	bookings, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "newer", bookings[0].ID)
	assert.Equal(t, "older", bookings[1].ID)
}

func TestListSkipsInvalidStoredRecords(t *testing.T) {
	svc, repo := newTestService()

	valid := models.Booking{
		Itinerary:   testItinerary(),
		ID:          "valid",
		OwnerID:     "user-1",
		BookingDate: "2025-02-01T10:00:00Z",
		Status:      models.BookingStatusConfirmed,
	}
	corrupt := valid
	corrupt.ID = "corrupt"
	corrupt.Status = "Cancelled"

	_, err := repo.Create(context.Background(), valid)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), corrupt)
	require.NoError(t, err)

	bookings, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "valid", bookings[0].ID)
}

func TestListIsScopedToOwner(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "user-1", testItinerary())
	require.NoError(t, err)

	bookings, err := svc.List(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), "user-1", testItinerary())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", "does-not-exist"))

	bookings, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, created.ID, bookings[0].ID)
}

func TestDeleteRemovesOwnBooking(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), "user-1", testItinerary())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", created.ID))

	bookings, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
