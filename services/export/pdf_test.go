package export

import (
	"testing"

	"tripwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItineraryPDF(t *testing.T) {
	it := models.Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           2,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days: []models.ItineraryDay{
			{
				Day:   1,
				Title: "Beach Day",
				Activities: []models.ItineraryActivity{
					{PlaceName: "Baga Beach", Description: "Relax on the sand.", TravelTime: "30 mins", Cost: "500"},
				},
			},
			{
				Day:   2,
				Title: "Old Goa",
				Activities: []models.ItineraryActivity{
					{PlaceName: "Basilica of Bom Jesus", Description: "Heritage walk."},
				},
			},
		},
	}

	pdfBytes, err := BuildItineraryPDF(it)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildItineraryPDFEmptyPlan(t *testing.T) {
	it := models.Itinerary{
		Destination:        "Goa, India",
		StartDate:          "2025-03-01",
		Duration:           3,
		Budget:             "30000",
		NumberOfTravellers: 2,
		Days:               []models.ItineraryDay{},
	}

	pdfBytes, err := BuildItineraryPDF(it)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
