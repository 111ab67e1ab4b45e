package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

const defaultPageSize = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an inventory event to the database.
func (r *Repository) LogEvent(event *entities.InventoryEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetEvents retrieves paginated events, most recent first.
func (r *Repository) GetEvents(limit, offset int) ([]entities.InventoryEvent, int64, error) {
	return r.page(r.db.Model(&entities.InventoryEvent{}), limit, offset)
}

// GetEventsByType retrieves paginated events of one type, most recent first.
func (r *Repository) GetEventsByType(eventType entities.InventoryEventType, limit, offset int) ([]entities.InventoryEvent, int64, error) {
	return r.page(r.db.Model(&entities.InventoryEvent{}).Where("event_type = ?", eventType), limit, offset)
}

// GetEventsForBook returns the full history of one book in the order it happened.
func (r *Repository) GetEventsForBook(bookID int) ([]entities.InventoryEvent, error) {
	var events []entities.InventoryEvent
	err := r.db.Where("book_id = ?", bookID).Order("created_at ASC, id ASC").Find(&events).Error
	return events, err
}

// DeleteOldEvents removes events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.InventoryEvent{})
	return result.RowsAffected, result.Error
}

func (r *Repository) page(query *gorm.DB, limit, offset int) ([]entities.InventoryEvent, int64, error) {
	var events []entities.InventoryEvent
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
