package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Paths match exactly; everything else, including a wrong method on a known
// path, answers 404.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = false

	if !cfg.QuietAccessLog {
		router.Use(gin.Logger())
	}
	router.Use(gin.CustomRecovery(recoveryHandler))
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	if cfg.ReadOnly != nil && cfg.ReadOnly.IsEnabled() {
		router.Use(cfg.ReadOnly.Handler())
	}

	health := NewHealthController(cfg.Version)
	books := NewBooksController(cfg.Store, cfg.AuditLogger)

	// Health endpoint
	router.GET("/books/health", health.Status)

	// Collection endpoints
	router.GET("/books/total", books.GetTotal)
	router.GET("/books", books.ListBooks)

	// Single book endpoints
	router.GET("/book", books.GetBook)
	router.POST("/book", books.CreateBook)
	router.PUT("/book", books.UpdatePrice)
	router.DELETE("/book", books.DeleteBook)

	router.NoRoute(endpointNotFound)

	return router
}
