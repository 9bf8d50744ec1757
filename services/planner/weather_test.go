package planner

import (
	"context"
	"encoding/json"
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDays() []models.ItineraryDay {
	return []models.ItineraryDay{
		{
			Day:   1,
			Title: "Beach Day",
			Activities: []models.ItineraryActivity{
				{PlaceName: "Baga Beach", Description: "Sunbathing."},
			},
		},
		{
			Day:   2,
			Title: "Markets",
			Activities: []models.ItineraryActivity{
				{PlaceName: "Anjuna Flea Market", Description: "Open-air shopping."},
			},
		},
	}
}

func TestAdjustForWeatherReplacesActivities(t *testing.T) {
	adjusted := sampleDays()
	adjusted[0].Activities = []models.ItineraryActivity{
		{PlaceName: "Goa State Museum", Description: "Indoor exhibits."},
	}
	payload, err := json.Marshal(adjusted)
	require.NoError(t, err)

	client := &stubClient{resp: string(payload)}
	svc := NewDefaultPlannerService(client, nil)

	out, err := svc.AdjustForWeather(context.Background(), sampleDays(), models.WeatherRainy)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Goa State Museum", out[0].Activities[0].PlaceName)
	assert.Contains(t, client.lastPrompt, "rainy")
}

func TestAdjustForWeatherMergesMisalignedResponse(t *testing.T) {
	// Provider dropped the second day; its activities must survive.
	short := `[{"day": 1, "title": "Beach Day", "activities": [{"placeName": "Aquarium", "description": "Indoor."}]}]`
	client := &stubClient{resp: short}
	svc := NewDefaultPlannerService(client, nil)

	days := sampleDays()
	out, err := svc.AdjustForWeather(context.Background(), days, models.WeatherRainy)
	require.NoError(t, err)
	require.Len(t, out, len(days))
	assert.Equal(t, "Aquarium", out[0].Activities[0].PlaceName)
	assert.Equal(t, "Anjuna Flea Market", out[1].Activities[0].PlaceName)
	// Day numbers and titles are never taken from the provider.
	assert.Equal(t, 2, out[1].Day)
	assert.Equal(t, "Markets", out[1].Title)
}

func TestAdjustForWeatherRejectsShapeInvalidActivities(t *testing.T) {
	// Provider stripped required activity fields; those days must keep their
	// original activities so the result still validates.
	bad := `[
		{"day": 1, "title": "Beach Day", "activities": [{"placeName": "", "description": ""}]},
		{"day": 2, "title": "Markets", "activities": [{"placeName": "Goa Science Centre", "description": "Indoor exhibits."}]}
	]`
	client := &stubClient{resp: bad}
	svc := NewDefaultPlannerService(client, nil)

	out, err := svc.AdjustForWeather(context.Background(), sampleDays(), models.WeatherRainy)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Baga Beach", out[0].Activities[0].PlaceName)
	assert.Equal(t, "Goa Science Centre", out[1].Activities[0].PlaceName)
	for i := range out {
		require.NoError(t, models.ValidateItineraryDay(&out[i]))
	}
}

func TestAdjustForWeatherSurfacesProviderError(t *testing.T) {
	client := &stubClient{err: errProviderDown}
	svc := NewDefaultPlannerService(client, nil)

	out, err := svc.AdjustForWeather(context.Background(), sampleDays(), models.WeatherSunny)
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestAdjustForWeatherSurfacesMalformedOutput(t *testing.T) {
	client := &stubClient{resp: "it is raining, stay inside"}
	svc := NewDefaultPlannerService(client, nil)

	_, err := svc.AdjustForWeather(context.Background(), sampleDays(), models.WeatherRainy)
	require.Error(t, err)
}

func TestAdjustForWeatherRejectsUnknownCondition(t *testing.T) {
	client := &stubClient{}
	svc := NewDefaultPlannerService(client, nil)

	_, err := svc.AdjustForWeather(context.Background(), sampleDays(), models.WeatherCondition("foggy"))
	require.Error(t, err)
	assert.Zero(t, client.calls)
}

func TestAdjustForWeatherEmptyDays(t *testing.T) {
	client := &stubClient{}
	svc := NewDefaultPlannerService(client, nil)

	out, err := svc.AdjustForWeather(context.Background(), nil, models.WeatherRainy)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, client.calls)
}
