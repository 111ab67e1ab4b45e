package http

import (
	"bytes"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/mrlokans/bookstore/internal/entities"
	"github.com/mrlokans/bookstore/internal/inventory"
)

// BookStore is the inventory as seen by the HTTP layer.
type BookStore interface {
	Create(input inventory.NewBook) (int, error)
	GetByID(id int) (entities.Book, error)
	UpdatePrice(id int, price float64) (float64, error)
	Delete(id int) (int, error)
	Filter(criteria inventory.Criteria) ([]entities.Book, error)
	Count(criteria inventory.Criteria) (int, error)
}

// AuditLogger receives every successful mutation.
type AuditLogger interface {
	LogCreated(requestID string, book entities.Book)
	LogPriceUpdated(requestID string, book entities.Book, oldPrice float64)
	LogDeleted(requestID string, book entities.Book)
}

type BooksController struct {
	store BookStore
	audit AuditLogger
}

// NewBooksController creates the controller. auditLogger may be nil.
func NewBooksController(store BookStore, auditLogger AuditLogger) *BooksController {
	return &BooksController{store: store, audit: auditLogger}
}

// createBookRequest uses pointers so absent and null fields can be told apart
// from zero values.
type createBookRequest struct {
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Year   *int     `json:"year"`
	Price  *float64 `json:"price"`
	Genres []string `json:"genres"`
}

func (r createBookRequest) toNewBook() inventory.NewBook {
	input := inventory.NewBook{
		Year:   r.Year,
		Price:  r.Price,
		Genres: r.Genres,
	}
	if r.Title != nil {
		input.Title = *r.Title
	}
	if r.Author != nil {
		input.Author = *r.Author
	}
	return input
}

// GetTotal returns how many books match the filters.
// GET /books/total
func (bc *BooksController) GetTotal(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		respondInventoryError(c, err, "parse filters")
		return
	}

	count, err := bc.store.Count(criteria)
	if err != nil {
		respondInventoryError(c, err, "count books")
		return
	}
	respondResult(c, count)
}

// ListBooks returns the matching books ordered by title, case-insensitively.
// GET /books
func (bc *BooksController) ListBooks(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		respondInventoryError(c, err, "parse filters")
		return
	}

	books, err := bc.store.Filter(criteria)
	if err != nil {
		respondInventoryError(c, err, "filter books")
		return
	}
	sortByTitle(books)
	respondResult(c, books)
}

// GetBook returns a single book.
// GET /book?id=
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseQueryID(c)
	if !ok {
		return
	}

	book, err := bc.store.GetByID(id)
	if err != nil {
		respondInventoryError(c, err, "get book")
		return
	}
	respondResult(c, book)
}

// CreateBook adds a book and returns its id.
// POST /book
func (bc *BooksController) CreateBook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "Error: Could not read request body")
		return
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		respondBadRequest(c, "Error: Request body is empty")
		return
	}

	var req createBookRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		respondBadRequest(c, "Error: Invalid request body: "+err.Error())
		return
	}

	id, err := bc.store.Create(req.toNewBook())
	if err != nil {
		respondInventoryError(c, err, "create book")
		return
	}

	if bc.audit != nil {
		if book, err := bc.store.GetByID(id); err == nil {
			bc.audit.LogCreated(GetRequestID(c), book)
		}
	}
	respondResult(c, id)
}

// UpdatePrice replaces the price of a book and returns the previous price.
// PUT /book?id=&price=
func (bc *BooksController) UpdatePrice(c *gin.Context) {
	rawID, hasID := queryValue(c, "id")
	rawPrice, hasPrice := queryValue(c, "price")
	if !hasID || !hasPrice {
		respondBadRequest(c, "Error: Missing book id or price")
		return
	}

	id, idErr := parseInt(rawID)
	price, priceErr := parsePrice(rawPrice)
	if idErr != nil || priceErr != nil {
		respondBadRequest(c, "Error: Invalid book id or price [id="+rawID+", price="+rawPrice+"]")
		return
	}

	oldPrice, err := bc.store.UpdatePrice(id, price)
	if err != nil {
		respondInventoryError(c, err, "update price")
		return
	}

	if bc.audit != nil {
		if book, err := bc.store.GetByID(id); err == nil {
			bc.audit.LogPriceUpdated(GetRequestID(c), book, oldPrice)
		}
	}
	respondResult(c, oldPrice)
}

// DeleteBook removes a book and returns how many remain.
// DELETE /book?id=
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseQueryID(c)
	if !ok {
		return
	}

	// Get book info for audit logging
	var book entities.Book
	if bc.audit != nil {
		book, _ = bc.store.GetByID(id)
	}

	remaining, err := bc.store.Delete(id)
	if err != nil {
		respondInventoryError(c, err, "delete book")
		return
	}

	if bc.audit != nil && book.ID == id {
		bc.audit.LogDeleted(GetRequestID(c), book)
	}
	respondResult(c, remaining)
}

func sortByTitle(books []entities.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
	})
}
