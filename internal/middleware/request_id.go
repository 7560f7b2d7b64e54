// Package middleware provides HTTP middleware components for the quantity service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the HTTP header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the request ID.
const requestIDKey = "request_id"

// maxRequestIDLength caps client-supplied IDs so a hostile header cannot
// bloat logs and audit documents.
const maxRequestIDLength = 128

// RequestID ensures every request carries a unique ID, reusing a reasonable
// client-supplied X-Request-ID or generating a UUID v4. The ID is echoed in
// the response header so callers can correlate.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID set by the RequestID middleware, or
// an empty string outside of it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
