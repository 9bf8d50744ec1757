// File: services/planner/suggest.go
package planner

import (
	"context"
	"encoding/json"
	"strconv"

	"tripwise/models"
	"tripwise/utils"

	"go.uber.org/zap"
)

// Baseline suggestion used whenever the provider cannot produce one. The
// caller's own fields always win over these defaults.
const (
	defaultDestination = "Goa, India"
	defaultBudget      = "50000"
	defaultDuration    = 7
	defaultTheme       = "Beaches and Nightlife"
	defaultTravellers  = 2
)

// Suggest fills in whichever trip fields are missing, or produces a distinct
// alternative when everything is already filled. On provider or shape
// failure it returns the canned baseline overlaid with the caller's fields,
// so user-entered values are never discarded.
func (s *DefaultPlannerService) Suggest(ctx context.Context, in models.TripSuggestionInput) *models.TripSuggestion {
	logger := utils.GetLogger()

	raw, err := s.Client.GenerateContent(ctx, buildSuggestPrompt(in))
	if err != nil {
		logger.Warn("Suggest: completion call failed, using baseline", zap.Error(err))
		return baselineSuggestion(in)
	}

	suggestion, err := decodeSuggestion(extractJSON(raw))
	if err != nil {
		logger.Warn("Suggest: malformed provider output, using baseline", zap.Error(err))
		return baselineSuggestion(in)
	}
	if err := models.ValidateTripSuggestion(suggestion); err != nil {
		logger.Warn("Suggest: provider output failed shape validation, using baseline", zap.Error(err))
		return baselineSuggestion(in)
	}
	return suggestion
}

// decodeSuggestion tolerates numbers arriving as strings; models do not
// always honor the "as a number" instruction.
func decodeSuggestion(data string) (*models.TripSuggestion, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, err
	}
	return &models.TripSuggestion{
		Destination:        asString(raw["destination"]),
		Budget:             asString(raw["budget"]),
		Duration:           asInt(raw["duration"]),
		Theme:              asString(raw["theme"]),
		NumberOfTravellers: asInt(raw["numberOfTravellers"]),
	}, nil
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func asInt(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n
		}
	}
	return 0
}

func baselineSuggestion(in models.TripSuggestionInput) *models.TripSuggestion {
	out := &models.TripSuggestion{
		Destination:        defaultDestination,
		Budget:             defaultBudget,
		Duration:           defaultDuration,
		Theme:              defaultTheme,
		NumberOfTravellers: defaultTravellers,
	}
	if in.Destination != "" {
		out.Destination = in.Destination
	}
	if in.Budget != "" {
		out.Budget = in.Budget
	}
	if in.Duration > 0 {
		out.Duration = in.Duration
	}
	if in.Theme != "" {
		out.Theme = in.Theme
	}
	if in.NumberOfTravellers > 0 {
		out.NumberOfTravellers = in.NumberOfTravellers
	}
	return out
}
