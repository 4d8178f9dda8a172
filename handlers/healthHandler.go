package handlers

import (
	"HealthBook/database"
	"HealthBook/middlewares"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root answers the bare root path.
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the HealthBook API!")
}

// Live reports that the process is serving requests.
func (h *HealthHandler) Live(c *gin.Context) {
	middlewares.RespondJSON(c, gin.H{"status": "ok"}, http.StatusOK)
}

// Ready reports whether the store answers a ping.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		middlewares.HttpError(c, "database unavailable", http.StatusServiceUnavailable, err)
		return
	}
	middlewares.RespondJSON(c, gin.H{"status": "ok", "db": "ok"}, http.StatusOK)
}
