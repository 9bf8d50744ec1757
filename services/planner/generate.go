// File: services/planner/generate.go
package planner

import (
	"context"
	"encoding/json"

	"tripwise/models"
	"tripwise/utils"

	"go.uber.org/zap"
)

// Generate turns a trip request into a full itinerary via the completion
// provider. It never returns an error: any provider or shape failure yields
// an empty-plan sentinel that echoes the request, so the caller always holds
// a structurally valid, renderable itinerary.
func (s *DefaultPlannerService) Generate(ctx context.Context, req models.TripRequest) *models.Itinerary {
	logger := utils.GetLogger()

	if err := models.ValidateTripRequest(&req); err != nil {
		logger.Warn("Generate: invalid trip request, returning empty plan", zap.Error(err))
		return emptyPlan(req)
	}

	raw, err := s.Client.GenerateContent(ctx, buildGeneratePrompt(req))
	if err != nil {
		logger.Warn("Generate: completion call failed, returning empty plan", zap.Error(err))
		return emptyPlan(req)
	}

	var itinerary models.Itinerary
	if err := json.Unmarshal([]byte(extractJSON(raw)), &itinerary); err != nil {
		logger.Warn("Generate: malformed provider output, returning empty plan", zap.Error(err))
		return emptyPlan(req)
	}
	if err := models.ValidateItinerary(&itinerary); err != nil {
		logger.Warn("Generate: provider output failed shape validation, returning empty plan", zap.Error(err))
		return emptyPlan(req)
	}
	if itinerary.Days == nil {
		itinerary.Days = []models.ItineraryDay{}
	}
	return &itinerary
}

// emptyPlan is the degraded result: the caller's own fields with no days.
func emptyPlan(req models.TripRequest) *models.Itinerary {
	return &models.Itinerary{
		Destination:        req.Destination,
		StartDate:          req.StartDate,
		Duration:           req.Duration,
		Budget:             req.Budget,
		NumberOfTravellers: req.NumberOfTravellers,
		Days:               []models.ItineraryDay{},
	}
}
