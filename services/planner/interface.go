// File: services/planner/interface.go
package planner

import (
	"context"

	"tripwise/models"
)

// PlannerService is the LLM-backed generation/adjustment/translation
// pipeline. Generate, Suggest and Translate recover from provider and shape
// failures with documented fallback values; AdjustForWeather surfaces
// provider failures because the caller holds known-good prior state.
type PlannerService interface {
	Generate(ctx context.Context, req models.TripRequest) *models.Itinerary
	Suggest(ctx context.Context, in models.TripSuggestionInput) *models.TripSuggestion
	AdjustForWeather(ctx context.Context, days []models.ItineraryDay, condition models.WeatherCondition) ([]models.ItineraryDay, error)
	Translate(ctx context.Context, texts []string, targetLanguage string) []string
	TranslateItinerary(ctx context.Context, it models.Itinerary, targetLanguage string) *models.Itinerary
}

// DefaultPlannerService is the production implementation.
type DefaultPlannerService struct {
	Client CompletionClient
	Cache  TranslationCache // optional; nil disables the display cache
}

// NewDefaultPlannerService wires the planner with its completion client and
// translation cache.
func NewDefaultPlannerService(client CompletionClient, cache TranslationCache) *DefaultPlannerService {
	return &DefaultPlannerService{Client: client, Cache: cache}
}
