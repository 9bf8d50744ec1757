package models

// Coordinates is an optional lat/lng pair attached to an activity.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// ItineraryActivity is a single place or activity within a day. It has no
// identity beyond its position in the parent day's list.
type ItineraryActivity struct {
	PlaceName   string       `bson:"placeName" json:"placeName" validate:"required"`
	Description string       `bson:"description" json:"description" validate:"required"`
	TravelTime  string       `bson:"travelTime,omitempty" json:"travelTime,omitempty"`
	Cost        string       `bson:"cost,omitempty" json:"cost,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

// ItineraryDay is one day of a trip plan.
type ItineraryDay struct {
	Day        int                 `bson:"day" json:"day" validate:"required,min=1"`
	Title      string              `bson:"title" json:"title" validate:"required"`
	Activities []ItineraryActivity `bson:"activities" json:"activities" validate:"dive"`
}

// Itinerary is the canonical day-by-day trip plan. Days are expected to be
// ordered by ascending day number starting at 1; that ordering is a contract
// with the completion provider, not something the validator enforces.
type Itinerary struct {
	Destination        string         `bson:"destination" json:"destination" validate:"required"`
	StartDate          string         `bson:"startDate" json:"startDate" validate:"required,datetime=2006-01-02"`
	Duration           int            `bson:"duration" json:"duration" validate:"required,min=1"`
	Budget             string         `bson:"budget" json:"budget" validate:"required"`
	NumberOfTravellers int            `bson:"numberOfTravellers" json:"numberOfTravellers" validate:"required,min=1"`
	Days               []ItineraryDay `bson:"itinerary" json:"itinerary" validate:"dive"`
}

// TripRequest carries the user-supplied parameters used to generate an
// itinerary. It is ephemeral and never persisted directly.
type TripRequest struct {
	Destination        string   `json:"destination" validate:"required,notblank"`
	StartDate          string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	Duration           int      `json:"duration" validate:"required,min=1"`
	Budget             string   `json:"budget" validate:"required"`
	Themes             []string `json:"themes" validate:"required,min=1,dive,required,notblank"`
	NumberOfTravellers int      `json:"numberOfTravellers" validate:"required,min=1"`
}

// TripSuggestionInput is a partial trip request; zero values mean "missing".
type TripSuggestionInput struct {
	Destination        string `json:"destination,omitempty"`
	Budget             string `json:"budget,omitempty"`
	Duration           int    `json:"duration,omitempty"`
	Theme              string `json:"theme,omitempty"`
	NumberOfTravellers int    `json:"numberOfTravellers,omitempty"`
}

// TripSuggestion is a complete suggestion with every field filled in.
type TripSuggestion struct {
	Destination        string `json:"destination" validate:"required"`
	Budget             string `json:"budget" validate:"required"`
	Duration           int    `json:"duration" validate:"required,min=1"`
	Theme              string `json:"theme" validate:"required"`
	NumberOfTravellers int    `json:"numberOfTravellers" validate:"required,min=1"`
}
