// Package database provides the persistence layer for operational records.
//
// The book inventory itself lives in memory (see package inventory) and is
// never written here. The database only holds the audit trail of inventory
// mutations:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── audit/           # Inventory event log
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./bookstore-audit.db")
//	repo := audit.NewRepository(db.DB)
//	events, total, err := repo.GetEvents(50, 0)
package database
