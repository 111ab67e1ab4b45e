package exporters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mrlokans/bookstore/internal/entities"
)

const snapshotTimeLayout = "20060102T150405Z"

// Snapshot is the on-disk shape of an inventory export.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Count       int             `json:"count"`
	Books       []entities.Book `json:"books"`
}

// SnapshotExporter writes point-in-time JSON copies of the inventory.
// Snapshots are for inspection only; the service never loads them back.
type SnapshotExporter struct {
	dir string
	now func() time.Time
}

func NewSnapshotExporter(dir string) *SnapshotExporter {
	return &SnapshotExporter{dir: dir, now: time.Now}
}

// Export writes books, sorted by title, to inventory-<timestamp>.json.
func (e *SnapshotExporter) Export(books []entities.Book) (ExportResult, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return ExportResult{}, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	sorted := make([]entities.Book, len(books))
	copy(sorted, books)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	generatedAt := e.now().UTC()
	snapshot := Snapshot{
		GeneratedAt: generatedAt,
		Count:       len(sorted),
		Books:       sorted,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("inventory-%s.json", generatedAt.Format(snapshotTimeLayout)))

	// Write to a temp file first so readers never see a partial snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return ExportResult{}, fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	return ExportResult{BooksProcessed: len(sorted), Path: path}, nil
}
