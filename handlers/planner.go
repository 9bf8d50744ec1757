package handlers

import (
	"net/http"

	"tripwise/models"
	"tripwise/services/planner"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the four LLM-backed flows over HTTP.
type PlannerHandler struct {
	Service planner.PlannerService
}

func NewPlannerHandler(svc planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Service: svc}
}

// GenerateItineraryHandler handles POST /api/planner/generate.
func (h *PlannerHandler) GenerateItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := models.ValidateTripRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itinerary := h.Service.Generate(c.Request.Context(), req)
	c.JSON(http.StatusOK, itinerary)
}

// SuggestTripHandler handles POST /api/planner/suggest.
func (h *PlannerHandler) SuggestTripHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in models.TripSuggestionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Warn("Invalid suggest request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	suggestion := h.Service.Suggest(c.Request.Context(), in)
	c.JSON(http.StatusOK, suggestion)
}

// AdjustWeatherRequest carries the current day list and the condition.
type AdjustWeatherRequest struct {
	Days      []models.ItineraryDay   `json:"days" binding:"required"`
	Condition models.WeatherCondition `json:"condition" binding:"required"`
}

// AdjustWeatherHandler handles POST /api/planner/weather. Provider failures
// are surfaced here instead of silently degrading; the client keeps its
// current itinerary and shows the failure.
func (h *PlannerHandler) AdjustWeatherHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req AdjustWeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid weather adjustment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !req.Condition.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported weather condition: " + string(req.Condition)})
		return
	}

	adjusted, err := h.Service.AdjustForWeather(c.Request.Context(), req.Days, req.Condition)
	if err != nil {
		logger.Error("Weather adjustment failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Weather adjustment failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": adjusted})
}

// TranslateRequest is a flat ordered list of strings plus a target language.
type TranslateRequest struct {
	Texts          []string `json:"texts"`
	TargetLanguage string   `json:"targetLanguage" binding:"required"`
}

// TranslateHandler handles POST /api/planner/translate.
func (h *PlannerHandler) TranslateHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid translate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	translations := h.Service.Translate(c.Request.Context(), req.Texts, req.TargetLanguage)
	c.JSON(http.StatusOK, gin.H{"translations": translations})
}

// TranslateItineraryRequest asks for a display-only projection of an
// itinerary in another language.
type TranslateItineraryRequest struct {
	Itinerary      models.Itinerary `json:"itinerary" binding:"required"`
	TargetLanguage string           `json:"targetLanguage" binding:"required"`
}

// TranslateItineraryHandler handles POST /api/planner/translate/itinerary.
// The canonical itinerary stays with the client; only a projection comes back.
func (h *PlannerHandler) TranslateItineraryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req TranslateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid itinerary translation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := models.ValidateItinerary(&req.Itinerary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection := h.Service.TranslateItinerary(c.Request.Context(), req.Itinerary, req.TargetLanguage)
	c.JSON(http.StatusOK, projection)
}
