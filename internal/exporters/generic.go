package exporters

import "github.com/mrlokans/bookstore/internal/entities"

type BookExporter interface {
	Export(books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed int    `json:"books_processed"`
	Path           string `json:"path"`
}
