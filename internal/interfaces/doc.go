// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Inventory
//
//   - BookStore: The operations the HTTP layer needs from the inventory
//     (internal/http/books.go). Implemented by inventory.Store.
//   - BookSource: Read-only view used by the snapshot job
//     (internal/scheduler/jobs.go). Implemented by inventory.Store.
//
// ## Audit Trail
//
//   - AuditLogger: Receives successful mutations together with the request id
//     (internal/http/books.go). Implemented by audit.Service.
//   - AuditEventCleaner: Retention cleanup (internal/scheduler/jobs.go).
//     Implemented by audit.Service.
//
// ## Export
//
//   - BookExporter: Writes a set of books somewhere (internal/exporters/generic.go).
//     Implemented by exporters.SnapshotExporter.
//
// # Adding an Implementation
//
// Add a compile-time assertion to checks.go next to the existing ones:
//
//	var _ http.BookStore = (*mystore.Store)(nil)
package interfaces
