package scheduler

import (
	"log"
	"time"

	"github.com/mrlokans/bookstore/internal/entities"
	"github.com/mrlokans/bookstore/internal/exporters"
)

const (
	SnapshotJobName     = "inventory_snapshot"
	AuditCleanupJobName = "audit_cleanup"
)

// BookSource provides the full inventory.
type BookSource interface {
	All() []entities.Book
}

// AuditEventCleaner provides the ability to delete old audit events.
type AuditEventCleaner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// NewSnapshotJob exports the whole inventory on every tick.
func NewSnapshotJob(schedule string, source BookSource, exporter exporters.BookExporter) Job {
	return Job{
		Name:     SnapshotJobName,
		Schedule: schedule,
		Run: func() {
			startTime := time.Now()
			result, err := exporter.Export(source.All())
			if err != nil {
				log.Printf("Snapshot: export failed: %v", err)
				return
			}
			log.Printf("Snapshot: exported %d books to %s in %v",
				result.BooksProcessed, result.Path, time.Since(startTime).Round(time.Millisecond))
		},
	}
}

// NewAuditCleanupJob removes audit events older than retentionDays
// (30 when not positive).
func NewAuditCleanupJob(schedule string, cleaner AuditEventCleaner, retentionDays int) Job {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	retention := time.Duration(retentionDays) * 24 * time.Hour

	return Job{
		Name:     AuditCleanupJobName,
		Schedule: schedule,
		Run: func() {
			deleted, err := cleaner.DeleteOldEvents(retention)
			if err != nil {
				log.Printf("Audit cleanup: failed: %v", err)
				return
			}
			log.Printf("Audit cleanup: removed %d events older than %d days", deleted, retentionDays)
		},
	}
}
