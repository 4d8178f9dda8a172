package routes

import (
	"HealthBook/config"
	"HealthBook/controllers"
	"HealthBook/handlers"
	"HealthBook/middlewares"
	"HealthBook/repositories"
	"HealthBook/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options carries what SetupRoutes needs beyond the store handle.
type Options struct {
	// Cache enables cache-aside reads when non-nil.
	Cache     repositories.Cache
	CacheTTL  time.Duration
	RateLimit config.RateLimitConfig
}

// OptionsFromConfig builds route options from the application config and an optional cache.
func OptionsFromConfig(cfg *config.AppConfig, cache repositories.Cache) Options {
	return Options{
		Cache:     cache,
		CacheTTL:  cfg.CacheTTL,
		RateLimit: cfg.RateLimit,
	}
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(db *gorm.DB, opts Options) http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Any origin may call the API
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middlewares.RequestIDHeader},
	}))

	if opts.RateLimit.Enabled() {
		router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
			RequestsPerSecond: opts.RateLimit.RequestsPerSecond,
			Burst:             opts.RateLimit.Burst,
		}))
	}

	// Initialize repositories, services, and handlers
	doctorRepo := repositories.NewDoctorRepository(db, opts.Cache, opts.CacheTTL)
	appointmentRepo := repositories.NewAppointmentRepository(db, opts.Cache, opts.CacheTTL)

	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))
	healthHandler := handlers.NewHealthHandler(db)

	// Register routes
	controllers.SetupAPIRoutes(router, doctorHandler, appointmentHandler)
	controllers.SetupRootRoute(router, healthHandler)

	return router
}
