package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Whitespace-only strings must not count as present.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// FieldViolation names a single field that failed shape validation.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError enumerates every offending field of a payload. Callers must
// not proceed with the payload when they receive one.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s (%s)", v.Field, v.Rule))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{}
		for _, fe := range verrs {
			out.Violations = append(out.Violations, FieldViolation{
				Field: fe.Namespace(),
				Rule:  fe.Tag(),
			})
		}
		return out
	}
	return err
}

// ValidateTripRequest checks a trip request before it is handed to the
// generation prompt.
func ValidateTripRequest(r *TripRequest) error {
	return validateStruct(r)
}

// ValidateItinerary is the single gate for itineraries crossing the
// completion-provider or persistence boundary.
func ValidateItinerary(it *Itinerary) error {
	return validateStruct(it)
}

// ValidateItineraryDay checks a single day, used when adjusted days are
// merged back into an itinerary.
func ValidateItineraryDay(d *ItineraryDay) error {
	return validateStruct(d)
}

// ValidateTripSuggestion checks a suggestion returned by the provider.
func ValidateTripSuggestion(s *TripSuggestion) error {
	return validateStruct(s)
}

// ValidateBooking checks a booking on both the write and read paths of the
// booking store.
func ValidateBooking(b *Booking) error {
	return validateStruct(b)
}
