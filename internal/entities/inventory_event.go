package entities

import "time"

type InventoryEventType string

const (
	InventoryEventBookCreated      InventoryEventType = "book_created"
	InventoryEventBookPriceUpdated InventoryEventType = "book_price_updated"
	InventoryEventBookDeleted      InventoryEventType = "book_deleted"
)

// InventoryEvent records a single successful mutation of the inventory.
type InventoryEvent struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	RequestID   string             `gorm:"index;size:64" json:"request_id,omitempty"`
	EventType   InventoryEventType `gorm:"index;size:50" json:"event_type"`
	BookID      int                `gorm:"index" json:"book_id"`
	Title       string             `gorm:"size:512" json:"title"`
	OldPrice    *float64           `json:"old_price,omitempty"`
	NewPrice    *float64           `json:"new_price,omitempty"`
	Description string             `gorm:"size:500" json:"description"` // Human-readable summary
	CreatedAt   time.Time          `gorm:"index" json:"created_at"`
}

func (InventoryEvent) TableName() string {
	return "inventory_events"
}
