package models

// WeatherCondition selects the adjustment policy for an itinerary.
type WeatherCondition string

const (
	WeatherRainy WeatherCondition = "rainy"
	WeatherSunny WeatherCondition = "sunny"
)

// IsValid reports whether the condition is one of the supported values.
func (w WeatherCondition) IsValid() bool {
	switch w {
	case WeatherRainy, WeatherSunny:
		return true
	}
	return false
}
