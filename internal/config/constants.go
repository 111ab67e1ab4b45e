package config

// Default paths
const (
	// DefaultAuditDatabasePath is the default path for the audit trail database
	DefaultAuditDatabasePath = "./bookstore-audit.db"

	// DefaultSnapshotDir is where inventory snapshots are written
	DefaultSnapshotDir = "./snapshots"
)

// Default schedules, cron format
const (
	DefaultAuditCleanupSchedule = "0 3 * * *" // Daily at 03:00
	DefaultSnapshotSchedule     = "0 * * * *" // Hourly at :00
)
