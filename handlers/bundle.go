package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers, assembled once in main.
type HandlerBundle struct {
	// Planner endpoints.
	GenerateItineraryHandler  gin.HandlerFunc
	SuggestTripHandler        gin.HandlerFunc
	AdjustWeatherHandler      gin.HandlerFunc
	TranslateHandler          gin.HandlerFunc
	TranslateItineraryHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	DeleteBookingHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetMeHandler            gin.HandlerFunc
	SignOutHandler          gin.HandlerFunc

	// Export endpoint.
	ExportItineraryHandler gin.HandlerFunc
}
