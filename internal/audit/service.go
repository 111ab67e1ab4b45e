package audit

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/mrlokans/bookstore/internal/database/audit"
	"github.com/mrlokans/bookstore/internal/entities"
)

// Service records inventory mutations in the audit trail.
type Service struct {
	repo    *audit.Repository
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records an event synchronously.
func (s *Service) Log(event *entities.InventoryEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an event in the background (non-blocking).
// Failures are logged and never reach the caller. The event is stamped
// before it is handed off so history keeps the order of the calls.
func (s *Service) LogAsync(event *entities.InventoryEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Flush blocks until every event passed to LogAsync has been written.
func (s *Service) Flush() {
	s.pending.Wait()
}

// LogCreated records a book creation.
func (s *Service) LogCreated(requestID string, book entities.Book) {
	price := book.Price
	s.LogAsync(&entities.InventoryEvent{
		RequestID:   requestID,
		EventType:   entities.InventoryEventBookCreated,
		BookID:      book.ID,
		Title:       book.Title,
		NewPrice:    &price,
		Description: truncate(fmt.Sprintf("Created book [%d] %s by %s", book.ID, book.Title, book.Author), 500),
	})
}

// LogPriceUpdated records a price change; book carries the new price.
func (s *Service) LogPriceUpdated(requestID string, book entities.Book, oldPrice float64) {
	newPrice := book.Price
	s.LogAsync(&entities.InventoryEvent{
		RequestID: requestID,
		EventType: entities.InventoryEventBookPriceUpdated,
		BookID:    book.ID,
		Title:     book.Title,
		OldPrice:  &oldPrice,
		NewPrice:  &newPrice,
		Description: truncate(fmt.Sprintf("Price of book [%d] %s changed from %s to %s",
			book.ID, book.Title, formatPrice(oldPrice), formatPrice(newPrice)), 500),
	})
}

// LogDeleted records a book removal.
func (s *Service) LogDeleted(requestID string, book entities.Book) {
	price := book.Price
	s.LogAsync(&entities.InventoryEvent{
		RequestID:   requestID,
		EventType:   entities.InventoryEventBookDeleted,
		BookID:      book.ID,
		Title:       book.Title,
		OldPrice:    &price,
		Description: truncate(fmt.Sprintf("Deleted book [%d] %s", book.ID, book.Title), 500),
	})
}

// Events retrieves paginated audit events.
func (s *Service) Events(limit, offset int) ([]entities.InventoryEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// EventsByType retrieves audit events filtered by type.
func (s *Service) EventsByType(eventType entities.InventoryEventType, limit, offset int) ([]entities.InventoryEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// History returns every recorded event for one book, oldest first.
func (s *Service) History(bookID int) ([]entities.InventoryEvent, error) {
	return s.repo.GetEventsForBook(bookID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
