package models

// BookingStatusConfirmed is the only status a booking ever carries; bookings
// are created confirmed and deleted, never transitioned.
const BookingStatusConfirmed = "Confirmed"

// Booking wraps a confirmed itinerary with ownership and audit fields. It is
// immutable after creation except for deletion by its owner.
type Booking struct {
	Itinerary   `bson:",inline"`
	ID          string `bson:"id" json:"id" validate:"required"`
	OwnerID     string `bson:"ownerId" json:"ownerId" validate:"required"`
	BookingDate string `bson:"bookingDate" json:"bookingDate" validate:"required"`
	Status      string `bson:"status" json:"status" validate:"required,eq=Confirmed"`
}
