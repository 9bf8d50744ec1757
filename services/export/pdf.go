package export

import (
	"bytes"
	"fmt"

	"tripwise/models"

	"github.com/phpdave11/gofpdf"
)

// BuildItineraryPDF renders an itinerary as a paginated A4 document. The
// transform is one-way and presentation-only; nothing is read back from it.
func BuildItineraryPDF(it models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("TripWise Itinerary: %s", it.Destination))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Start Date: %s", it.StartDate))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Duration: %d days", it.Duration))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Budget: %s INR", it.Budget))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Travellers: %d", it.NumberOfTravellers))
	pdf.Ln(10)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d: %s", day.Day, day.Title))
		pdf.Ln(10)

		for _, act := range day.Activities {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 6, act.PlaceName)
			pdf.Ln(6)

			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, act.Description, "", "", false)
			if act.TravelTime != "" || act.Cost != "" {
				detail := ""
				if act.TravelTime != "" {
					detail = "Travel time: " + act.TravelTime
				}
				if act.Cost != "" {
					if detail != "" {
						detail += "  |  "
					}
					detail += "Cost: " + act.Cost
				}
				pdf.SetFont("Arial", "I", 9)
				pdf.Cell(0, 5, detail)
				pdf.Ln(5)
			}
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	if len(it.Days) == 0 {
		pdf.SetFont("Arial", "I", 11)
		pdf.Cell(0, 8, "No days planned yet.")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary PDF: %w", err)
	}
	return buf.Bytes(), nil
}
