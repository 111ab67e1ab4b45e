package inventory

import (
	"errors"
	"strings"

	"github.com/mrlokans/bookstore/internal/entities"
)

// Criteria narrows a scan. Nil or empty fields do not constrain the result;
// all present constraints must hold (AND). GenresAny matches a book carrying
// at least one of the listed genres.
type Criteria struct {
	Author       *string
	PriceAtLeast *float64
	PriceAtMost  *float64
	YearAtLeast  *int
	YearAtMost   *int
	GenresAny    []string
}

// IsEmpty reports whether no constraint is set.
func (c Criteria) IsEmpty() bool {
	return c.Author == nil &&
		c.PriceAtLeast == nil && c.PriceAtMost == nil &&
		c.YearAtLeast == nil && c.YearAtMost == nil &&
		len(c.GenresAny) == 0
}

// matcher is Criteria with its genre names resolved against the vocabulary.
type matcher struct {
	criteria Criteria
	author   string
	genres   []entities.Genre
}

func (c Criteria) compile() (*matcher, error) {
	m := &matcher{criteria: c}
	if c.Author != nil {
		m.author = strings.ToLower(strings.TrimSpace(*c.Author))
	}
	if len(c.GenresAny) > 0 {
		genres, err := entities.ParseGenres(c.GenresAny)
		if err != nil {
			var unknown *entities.UnknownGenreError
			if errors.As(err, &unknown) {
				return nil, invalidGenreError(unknown.Name)
			}
			return nil, err
		}
		m.genres = genres
	}
	return m, nil
}

func (m *matcher) matches(b *entities.Book) bool {
	c := m.criteria
	if c.Author != nil && strings.ToLower(strings.TrimSpace(b.Author)) != m.author {
		return false
	}
	if c.PriceAtLeast != nil && b.Price < *c.PriceAtLeast {
		return false
	}
	if c.PriceAtMost != nil && b.Price > *c.PriceAtMost {
		return false
	}
	if c.YearAtLeast != nil && b.Year < *c.YearAtLeast {
		return false
	}
	if c.YearAtMost != nil && b.Year > *c.YearAtMost {
		return false
	}
	if len(m.genres) > 0 && !b.HasAnyGenre(m.genres) {
		return false
	}
	return true
}
