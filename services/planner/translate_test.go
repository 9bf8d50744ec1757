package planner

import (
	"context"
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateEmptyInputSkipsProvider(t *testing.T) {
	client := &stubClient{}
	svc := NewDefaultPlannerService(client, nil)

	out := svc.Translate(context.Background(), nil, "French")

	assert.Empty(t, out)
	assert.Zero(t, client.calls)
}

func TestTranslatePreservesOrderAndLength(t *testing.T) {
	client := &stubClient{resp: `["Bonjour", "Au revoir"]`}
	svc := NewDefaultPlannerService(client, nil)

	out := svc.Translate(context.Background(), []string{"Hello", "Goodbye"}, "French")

	assert.Equal(t, []string{"Bonjour", "Au revoir"}, out)
}

func TestTranslateIdentityOnProviderError(t *testing.T) {
	client := &stubClient{err: errProviderDown}
	svc := NewDefaultPlannerService(client, nil)

	texts := []string{"Hello", "Goodbye"}
	out := svc.Translate(context.Background(), texts, "French")

	assert.Equal(t, texts, out)
}

func TestTranslateIdentityOnLengthMismatch(t *testing.T) {
	client := &stubClient{resp: `["Bonjour"]`}
	svc := NewDefaultPlannerService(client, nil)

	texts := []string{"Hello", "Goodbye"}
	out := svc.Translate(context.Background(), texts, "French")

	assert.Equal(t, texts, out)
}

func TestTranslateUsesCache(t *testing.T) {
	client := &stubClient{resp: `["Bonjour", "Au revoir"]`}
	svc := NewDefaultPlannerService(client, NewMemoryTranslationCache())

	texts := []string{"Hello", "Goodbye"}
	first := svc.Translate(context.Background(), texts, "French")
	second := svc.Translate(context.Background(), texts, "French")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.calls)
}

func TestTranslateItineraryBuildsProjection(t *testing.T) {
	canonical := models.Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           1,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days: []models.ItineraryDay{
			{
				Day:   1,
				Title: "Beach Day",
				Activities: []models.ItineraryActivity{
					{PlaceName: "Baga Beach", Description: "Relax on the sand.", Cost: "500"},
				},
			},
		},
	}

	client := &stubClient{resp: `["Goa, Inde", "Journée plage", "Plage de Baga", "Détendez-vous sur le sable."]`}
	svc := NewDefaultPlannerService(client, nil)

	projection := svc.TranslateItinerary(context.Background(), canonical, "French")

	require.NotNil(t, projection)
	assert.Equal(t, "Goa, Inde", projection.Destination)
	assert.Equal(t, "Journée plage", projection.Days[0].Title)
	assert.Equal(t, "Plage de Baga", projection.Days[0].Activities[0].PlaceName)
	// Non-translatable fields carry over untouched.
	assert.Equal(t, "500", projection.Days[0].Activities[0].Cost)
	assert.Equal(t, "2025-03-01", projection.StartDate)

	// The canonical copy is never mutated.
	assert.Equal(t, "Goa, India", canonical.Destination)
	assert.Equal(t, "Beach Day", canonical.Days[0].Title)
	assert.Equal(t, "Baga Beach", canonical.Days[0].Activities[0].PlaceName)
}

func TestTranslateItineraryIdentityOnFailure(t *testing.T) {
	canonical := models.Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           1,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days: []models.ItineraryDay{
			{Day: 1, Title: "Beach Day"},
		},
	}

	client := &stubClient{err: errProviderDown}
	svc := NewDefaultPlannerService(client, nil)

	projection := svc.TranslateItinerary(context.Background(), canonical, "French")

	require.NotNil(t, projection)
	assert.Equal(t, canonical.Destination, projection.Destination)
	assert.Equal(t, canonical.Days[0].Title, projection.Days[0].Title)
}
