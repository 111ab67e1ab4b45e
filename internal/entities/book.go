package entities

// Book is a single title held in the store inventory.
// Only Price may change after creation.
type Book struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Genres []Genre `json:"genres"`
}

// Clone returns a copy of the book that shares no memory with the original.
func (b Book) Clone() Book {
	clone := b
	if b.Genres != nil {
		clone.Genres = make([]Genre, len(b.Genres))
		copy(clone.Genres, b.Genres)
	}
	return clone
}

// HasAnyGenre reports whether the book is tagged with at least one of the given genres.
func (b Book) HasAnyGenre(genres []Genre) bool {
	for _, want := range genres {
		for _, have := range b.Genres {
			if have == want {
				return true
			}
		}
	}
	return false
}
