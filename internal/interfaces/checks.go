package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookstore/internal/audit"
	"github.com/mrlokans/bookstore/internal/exporters"
	"github.com/mrlokans/bookstore/internal/http"
	"github.com/mrlokans/bookstore/internal/inventory"
	"github.com/mrlokans/bookstore/internal/scheduler"
)

// =============================================================================
// Inventory
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*inventory.Store)(nil)

// BookSource implementations
var _ scheduler.BookSource = (*inventory.Store)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

// AuditLogger implementations
var _ http.AuditLogger = (*audit.Service)(nil)

// AuditEventCleaner implementations
var _ scheduler.AuditEventCleaner = (*audit.Service)(nil)

// =============================================================================
// Export
// =============================================================================

// BookExporter implementations
var _ exporters.BookExporter = (*exporters.SnapshotExporter)(nil)
