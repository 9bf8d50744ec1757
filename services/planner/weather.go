// File: services/planner/weather.go
package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"tripwise/models"
	"tripwise/utils"

	"go.uber.org/zap"
)

// AdjustForWeather asks the provider to swap weather-sensitive activities:
// indoor under rainy, outdoor under sunny. The returned list always has the
// same length and day ordering as the input. Unlike Generate and Suggest, a
// failed completion call is surfaced to the caller, because silently keeping
// the old plan would look like a no-op bug; the caller still holds its
// known-good itinerary.
func (s *DefaultPlannerService) AdjustForWeather(ctx context.Context, days []models.ItineraryDay, condition models.WeatherCondition) ([]models.ItineraryDay, error) {
	logger := utils.GetLogger()

	if !condition.IsValid() {
		return nil, fmt.Errorf("unsupported weather condition %q", condition)
	}
	if len(days) == 0 {
		return []models.ItineraryDay{}, nil
	}

	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("serialize itinerary days: %w", err)
	}

	raw, err := s.Client.GenerateContent(ctx, buildWeatherPrompt(string(daysJSON), condition))
	if err != nil {
		return nil, fmt.Errorf("weather adjustment call failed: %w", err)
	}

	var adjusted []models.ItineraryDay
	if err := json.Unmarshal([]byte(extractJSON(raw)), &adjusted); err != nil {
		return nil, fmt.Errorf("weather adjustment returned malformed output: %w", err)
	}

	if len(adjusted) != len(days) {
		logger.Warn("AdjustForWeather: provider returned misaligned day list, merging best-effort",
			zap.Int("want", len(days)), zap.Int("got", len(adjusted)))
	}
	return mergeAdjustedDays(days, adjusted), nil
}

// mergeAdjustedDays keeps each original day's number and title and takes the
// adjusted activities where the provider supplied them. Each candidate day is
// re-run through the shape validator before it replaces the original; days
// whose adjusted activities fail validation keep the original activities, as
// do unmatched indices.
func mergeAdjustedDays(original, adjusted []models.ItineraryDay) []models.ItineraryDay {
	logger := utils.GetLogger()

	merged := make([]models.ItineraryDay, len(original))
	for i, day := range original {
		merged[i] = day
		if i >= len(adjusted) || adjusted[i].Activities == nil {
			continue
		}
		candidate := day
		candidate.Activities = adjusted[i].Activities
		if err := models.ValidateItineraryDay(&candidate); err != nil {
			logger.Warn("AdjustForWeather: adjusted day failed shape validation, keeping original activities",
				zap.Int("day", day.Day), zap.Error(err))
			continue
		}
		merged[i] = candidate
	}
	return merged
}
