package routes

import (
	"net/http"
	"time"

	"tripwise/handlers"
	"tripwise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlannerRoutes registers the LLM-backed planning endpoints. They
// work anonymously; a valid token just attaches the caller's identity.
func RegisterPlannerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.Use(middleware.JWTAuthMiddleware(true))
		api.POST("/generate", hb.GenerateItineraryHandler)
		api.POST("/suggest", hb.SuggestTripHandler)
		api.POST("/weather", hb.AdjustWeatherHandler)
		api.POST("/translate", hb.TranslateHandler)
		api.POST("/translate/itinerary", hb.TranslateItineraryHandler)
	}
}

// RegisterBookingRoutes registers the booking store endpoints. Identity is a
// hard precondition here.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(false))
		api.GET("/me", hb.GetMeHandler)
		api.DELETE("/signout", hb.SignOutHandler)
	}
}

// RegisterExportRoutes registers the PDF export endpoint.
func RegisterExportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itinerary")
	{
		api.Use(middleware.JWTAuthMiddleware(true))
		api.POST("/export", hb.ExportItineraryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TripWise"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlannerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterExportRoutes(r, hb)
	RegisterHealthRoute(r)
}
