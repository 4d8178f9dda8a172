package middlewares

import (
	"HealthBook/models"
	"log"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes data as the JSON body with the given status.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError aborts the request with {"error": message}. A non-nil err is logged with the request id
// and never sent to the caller.
func HttpError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		log.Printf("HTTP %d %s %s - %s: %v (request %s)", status, c.Request.Method, c.Request.URL.Path, message, err, RequestID(c))
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}
