package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request correlation id in both directions.
	RequestIDHeader = "X-Request-ID"

	// ContextKeyRequestID is the Gin context key holding the request id.
	ContextKeyRequestID = "request_id"

	maxRequestIDLength = 64
)

// RequestIDMiddleware reuses a sane incoming X-Request-ID or generates a UUID,
// stores it in the context and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestIDMiddleware, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// SecurityHeadersMiddleware adds security headers suited to a JSON API.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}

// recoveryHandler answers a recovered panic in the API's error format.
func recoveryHandler(c *gin.Context, recovered any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{ErrorMessage: "internal server error"})
}

func endpointNotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Error: Endpoint not found")
}
