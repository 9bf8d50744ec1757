// File: services/planner/translate.go
package planner

import (
	"context"
	"encoding/json"

	"tripwise/models"
	"tripwise/utils"

	"go.uber.org/zap"
)

// Translate translates each element of texts to the target language,
// strictly preserving order and length. An empty input returns empty without
// a provider call. On call failure or a length mismatch it returns the
// original texts unchanged, so the caller can still render in the source
// language.
func (s *DefaultPlannerService) Translate(ctx context.Context, texts []string, targetLanguage string) []string {
	logger := utils.GetLogger()

	if len(texts) == 0 {
		return []string{}
	}

	key := translationKey(texts, targetLanguage)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, key); ok && len(cached) == len(texts) {
			return cached
		}
	}

	textsJSON, err := json.Marshal(texts)
	if err != nil {
		logger.Warn("Translate: failed to serialize input, returning original", zap.Error(err))
		return texts
	}

	raw, err := s.Client.GenerateContent(ctx, buildTranslatePrompt(string(textsJSON), targetLanguage))
	if err != nil {
		logger.Warn("Translate: completion call failed, returning original", zap.Error(err))
		return texts
	}

	var translated []string
	if err := json.Unmarshal([]byte(extractJSON(raw)), &translated); err != nil {
		logger.Warn("Translate: malformed provider output, returning original", zap.Error(err))
		return texts
	}
	if len(translated) != len(texts) {
		logger.Warn("Translate: provider returned wrong number of strings, returning original",
			zap.Int("want", len(texts)), zap.Int("got", len(translated)))
		return texts
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, key, translated)
	}
	return translated
}

// TranslateItinerary builds a display-only projection of the itinerary in
// the target language. The canonical (English) itinerary is never mutated;
// weather adjustment and booking always operate on the original.
func (s *DefaultPlannerService) TranslateItinerary(ctx context.Context, it models.Itinerary, targetLanguage string) *models.Itinerary {
	texts := flattenItineraryTexts(it)
	translated := s.Translate(ctx, texts, targetLanguage)
	return rebuildItinerary(it, translated)
}

// flattenItineraryTexts walks the itinerary in a fixed traversal order:
// destination, then per day its title followed by each activity's placeName
// and description. rebuildItinerary depends on the same order.
func flattenItineraryTexts(it models.Itinerary) []string {
	texts := []string{it.Destination}
	for _, day := range it.Days {
		texts = append(texts, day.Title)
		for _, act := range day.Activities {
			texts = append(texts, act.PlaceName, act.Description)
		}
	}
	return texts
}

// rebuildItinerary substitutes translated strings positionally into a deep
// copy of the itinerary.
func rebuildItinerary(it models.Itinerary, translated []string) *models.Itinerary {
	out := it
	out.Days = make([]models.ItineraryDay, len(it.Days))

	pos := 0
	next := func() string {
		s := translated[pos]
		pos++
		return s
	}

	out.Destination = next()
	for i, day := range it.Days {
		copied := day
		copied.Title = next()
		copied.Activities = make([]models.ItineraryActivity, len(day.Activities))
		for j, act := range day.Activities {
			copied.Activities[j] = act
			copied.Activities[j].PlaceName = next()
			copied.Activities[j].Description = next()
		}
		out.Days[i] = copied
	}
	return &out
}
