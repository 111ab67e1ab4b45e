// Package readonly blocks inventory mutations while keeping reads available.
package readonly

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const blockedMessage = "Error: the book store is in read-only mode"

// Middleware rejects write requests when enabled.
// GET, HEAD and OPTIONS always pass, as do requests that matched no route
// so unknown endpoints keep answering 404.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled || c.FullPath() == "" {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"errorMessage": blockedMessage})
	}
}
