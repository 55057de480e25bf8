package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripfolio/internal/auth"
	"tripfolio/internal/config"
	"tripfolio/internal/handler"
	"tripfolio/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	verifier auth.Verifier,
	tripH *handler.TripHandler,
	extractH *handler.ExtractHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Protected routes - require a valid bearer token from the identity provider
	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(verifier))

	trips := v1.Group("/trips")
	trips.POST("", tripH.Create)
	trips.GET("", tripH.List)
	trips.GET("/export", tripH.Export)
	trips.GET("/:id", tripH.GetByID)
	trips.PATCH("/:id", tripH.Update)
	trips.DELETE("/:id", tripH.Delete)

	v1.POST("/extract", extractH.Extract)

	return r
}
