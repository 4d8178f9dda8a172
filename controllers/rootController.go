package controllers

import (
	"HealthBook/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRootRoute registers the root path and the health probes.
func SetupRootRoute(router *gin.Engine, healthHandler *handlers.HealthHandler) {
	router.GET("/", healthHandler.Root)
	router.GET("/healthz", healthHandler.Live)
	router.GET("/readyz", healthHandler.Ready)
}
