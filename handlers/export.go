package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"tripwise/models"
	"tripwise/services/export"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportItineraryHandler handles POST /api/itinerary/export and streams the
// rendered PDF back as an attachment.
func ExportItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var itinerary models.Itinerary
	if err := c.ShouldBindJSON(&itinerary); err != nil {
		logger.Warn("Invalid export request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := models.ValidateItinerary(&itinerary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdfBytes, err := export.BuildItineraryPDF(itinerary)
	if err != nil {
		logger.Error("Failed to render itinerary PDF", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to render PDF", err.Error())
		return
	}

	filename := fmt.Sprintf("TripWise-Itinerary-%s.pdf", strings.ReplaceAll(itinerary.Destination, " ", "-"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
