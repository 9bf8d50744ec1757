package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshItinerary() Itinerary {
	return Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           3,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days: []ItineraryDay{
			{
				Day:   1,
				Title: "Beach Day",
				Activities: []ItineraryActivity{
					{PlaceName: "Baga Beach", Description: "Relax on the sand."},
				},
			},
		},
	}
}

func TestItineraryRoundTrip(t *testing.T) {
	it := freshItinerary()
	require.NoError(t, ValidateItinerary(&it))

	booking := Booking{
		Itinerary:   it,
		ID:          "booking-1",
		OwnerID:     "user-1",
		BookingDate: time.Now().UTC().Format(time.RFC3339),
		Status:      BookingStatusConfirmed,
	}
	require.NoError(t, ValidateBooking(&booking))
}

func TestItineraryWithEmptyDaysIsValid(t *testing.T) {
	// The empty-plan sentinel from the generation fallback must pass the gate.
	it := freshItinerary()
	it.Days = []ItineraryDay{}
	require.NoError(t, ValidateItinerary(&it))
}

func TestItineraryMissingFieldsEnumerated(t *testing.T) {
	it := freshItinerary()
	it.Destination = ""
	it.Budget = ""

	err := ValidateItinerary(&it)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Violations, 2)
	assert.Contains(t, verr.Error(), "Destination")
	assert.Contains(t, verr.Error(), "Budget")
}

func TestItineraryRejectsBadStartDate(t *testing.T) {
	it := freshItinerary()
	it.StartDate = "March 1st, 2025"
	require.Error(t, ValidateItinerary(&it))
}

func TestItineraryRejectsInvalidActivity(t *testing.T) {
	it := freshItinerary()
	it.Days[0].Activities[0].PlaceName = ""
	require.Error(t, ValidateItinerary(&it))
}

func TestBookingRejectsUnknownStatus(t *testing.T) {
	booking := Booking{
		Itinerary:   freshItinerary(),
		ID:          "booking-1",
		OwnerID:     "user-1",
		BookingDate: time.Now().UTC().Format(time.RFC3339),
		Status:      "Pending",
	}
	require.Error(t, ValidateBooking(&booking))
}

func TestTripRequestRequiresThemes(t *testing.T) {
	req := TripRequest{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           3,
		Budget:             "30000",
		NumberOfTravellers: 2,
	}
	require.Error(t, ValidateTripRequest(&req))

	req.Themes = []string{"beaches"}
	require.NoError(t, ValidateTripRequest(&req))
}

func TestTripRequestRejectsBlankStrings(t *testing.T) {
	req := TripRequest{
		Destination:        "   ",
		StartDate:          "2025-03-01",
		Duration:           3,
		Budget:             "30000",
		Themes:             []string{"beaches"},
		NumberOfTravellers: 2,
	}
	require.Error(t, ValidateTripRequest(&req))

	req.Destination = "Goa, India"
	req.Themes = []string{"  "}
	require.Error(t, ValidateTripRequest(&req))
}

func TestTripRequestRejectsNonPositiveCounts(t *testing.T) {
	req := TripRequest{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           0,
		Budget:             "30000",
		Themes:             []string{"beaches"},
		NumberOfTravellers: 2,
	}
	require.Error(t, ValidateTripRequest(&req))
}
