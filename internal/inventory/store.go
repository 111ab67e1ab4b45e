// Package inventory owns the in-memory book collection and its id counter.
//
// All mutations take the write lock for their whole validate-then-apply
// sequence, so concurrent readers only ever observe a state from before or
// after a mutation.
package inventory

import (
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/mrlokans/bookstore/internal/entities"
)

const (
	MinYear = 1940
	MaxYear = 2100
)

// NewBook is the unvalidated input of Create. Nil pointers and empty
// strings (after trimming) count as missing.
type NewBook struct {
	Title  string
	Author string
	Year   *int
	Price  *float64
	Genres []string
}

type Store struct {
	mu     sync.RWMutex
	books  map[int]*entities.Book
	titles map[string]int // lower-cased title -> id
	nextID int
}

func NewStore() *Store {
	return &Store{
		books:  make(map[int]*entities.Book),
		titles: make(map[string]int),
		nextID: 1,
	}
}

// Create validates the input and stores a new book, returning its id.
// Checks run in a fixed order and the first failure wins: missing field,
// year range, price, duplicate title, genre vocabulary. A failed call
// leaves the store and the id counter untouched.
func (s *Store) Create(input NewBook) (int, error) {
	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)

	switch {
	case title == "":
		return 0, missingFieldError("title")
	case author == "":
		return 0, missingFieldError("author")
	case input.Year == nil:
		return 0, missingFieldError("year")
	case input.Price == nil:
		return 0, missingFieldError("price")
	case len(input.Genres) == 0:
		return 0, missingFieldError("genres")
	}

	year, price := *input.Year, *input.Price
	if year < MinYear || year > MaxYear {
		return 0, yearRangeError(year)
	}
	if !(price > 0) {
		return 0, createPriceError(price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := titleKey(title)
	if _, exists := s.titles[key]; exists {
		return 0, duplicateTitleError(title)
	}

	genres, err := entities.ParseGenres(input.Genres)
	if err != nil {
		var unknown *entities.UnknownGenreError
		if errors.As(err, &unknown) {
			return 0, invalidGenreError(unknown.Name)
		}
		return 0, err
	}

	id := s.nextID
	s.books[id] = &entities.Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Price:  price,
		Genres: genres,
	}
	s.titles[key] = id
	s.nextID++

	log.Printf("Inventory: created book [%d] %q", id, title)
	return id, nil
}

// GetByID returns a copy of the stored book.
func (s *Store) GetByID(id int) (entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return entities.Book{}, notFoundError(id)
	}
	return book.Clone(), nil
}

// UpdatePrice replaces the price of a book and returns the previous one.
// An unknown id is reported before an invalid price.
func (s *Store) UpdatePrice(id int, price float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return 0, notFoundError(id)
	}
	if !(price > 0) {
		return 0, updatePriceError(id, price)
	}

	old := book.Price
	book.Price = price
	log.Printf("Inventory: book [%d] price %s -> %s", id, formatPrice(old), formatPrice(price))
	return old, nil
}

// Delete removes a book and returns how many books remain. Ids are never reused.
func (s *Store) Delete(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return 0, notFoundError(id)
	}
	delete(s.books, id)
	delete(s.titles, titleKey(book.Title))

	log.Printf("Inventory: deleted book [%d] %q", id, book.Title)
	return len(s.books), nil
}

// Filter returns copies of every book matching all constraints in c, ordered
// by id. An unknown genre fails the whole scan with ErrInvalidGenre.
func (s *Store) Filter(c Criteria) ([]entities.Book, error) {
	m, err := c.compile()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Book, 0, len(s.books))
	for _, book := range s.books {
		if m.matches(book) {
			result = append(result, book.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Count returns the number of books Filter would return for c.
func (s *Store) Count(c Criteria) (int, error) {
	m, err := c.compile()
	if err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, book := range s.books {
		if m.matches(book) {
			count++
		}
	}
	return count, nil
}

// All returns every book ordered by id.
func (s *Store) All() []entities.Book {
	books, _ := s.Filter(Criteria{})
	return books
}

// Len returns the number of stored books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
