// File: tripwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/config"
	"tripwise/database"
	bookingRepo "tripwise/database/repository/booking"
	userRepoPkg "tripwise/database/repository/user"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/routes"
	bookingSvc "tripwise/services/booking"
	"tripwise/services/planner"
	userSvc "tripwise/services/user"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	var bookings bookingRepo.BookingRepository
	if config.AppConfig.BookingStore == "memory" {
		bookings = bookingRepo.NewMemoryBookingRepo()
	} else {
		bookings = bookingRepo.NewMongoBookingRepo()
		if err := bookingRepo.EnsureBookingIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
	}

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo: bookings,
	}

	translationCache := planner.NewRedisTranslationCache(utils.GetCacheClient(), utils.TranslationCacheTTL)
	geminiClient := planner.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	plannerService := planner.NewDefaultPlannerService(geminiClient, translationCache)

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Planner endpoints.
		GenerateItineraryHandler:  plannerHandler.GenerateItineraryHandler,
		SuggestTripHandler:        plannerHandler.SuggestTripHandler,
		AdjustWeatherHandler:      plannerHandler.AdjustWeatherHandler,
		TranslateHandler:          plannerHandler.TranslateHandler,
		TranslateItineraryHandler: plannerHandler.TranslateItineraryHandler,

		// Booking endpoints.
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,
		DeleteBookingHandler: bookingHandler.DeleteBookingHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetMeHandler:            userHandler.GetMeHandler,
		SignOutHandler:          userHandler.SignOutHandler,

		// Export endpoint.
		ExportItineraryHandler: handlers.ExportItineraryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
