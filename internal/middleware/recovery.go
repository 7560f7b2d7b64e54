package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/decorline/quantity-service/internal/domain/dto"
	"github.com/decorline/quantity-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics, logs the stack
// with the request ID, and answers 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				l := logger.Logger()
				l.Error().
					Str("request_id", requestID).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:     dto.ErrCodeInternal,
					Message:   "An unexpected error occurred",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
		}()
		c.Next()
	}
}
