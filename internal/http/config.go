package http

import "github.com/mrlokans/bookstore/internal/readonly"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store BookStore

	// Audit trail (optional)
	AuditLogger AuditLogger

	// Blocks mutations when enabled (optional)
	ReadOnly *readonly.Middleware

	// Disables gin's access log, used by tests
	QuietAccessLog bool

	// Application info
	Version string
}
