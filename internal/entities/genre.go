package entities

import (
	"fmt"
	"strings"
)

type Genre string

const (
	GenreSciFi        Genre = "SCI_FI"
	GenreNovel        Genre = "NOVEL"
	GenreHistory      Genre = "HISTORY"
	GenreManga        Genre = "MANGA"
	GenreRomance      Genre = "ROMANCE"
	GenreProfessional Genre = "PROFESSIONAL"
)

var allGenres = []Genre{
	GenreSciFi,
	GenreNovel,
	GenreHistory,
	GenreManga,
	GenreRomance,
	GenreProfessional,
}

// AllGenres returns the closed genre vocabulary in declaration order.
func AllGenres() []Genre {
	genres := make([]Genre, len(allGenres))
	copy(genres, allGenres)
	return genres
}

// IsValid reports whether g belongs to the vocabulary.
func (g Genre) IsValid() bool {
	switch g {
	case GenreSciFi, GenreNovel, GenreHistory, GenreManga, GenreRomance, GenreProfessional:
		return true
	}
	return false
}

// ParseGenre matches a genre name exactly (names are upper case).
func ParseGenre(name string) (Genre, bool) {
	g := Genre(name)
	if !g.IsValid() {
		return "", false
	}
	return g, true
}

// UnknownGenreError names the first value that is not part of the vocabulary.
type UnknownGenreError struct {
	Name string
}

func (e *UnknownGenreError) Error() string {
	return fmt.Sprintf("unknown genre %q", e.Name)
}

// ParseGenres converts raw names into genres, dropping repeats while keeping
// first-seen order. Surrounding whitespace is ignored.
func ParseGenres(names []string) ([]Genre, error) {
	genres := make([]Genre, 0, len(names))
	seen := make(map[Genre]struct{}, len(names))
	for _, name := range names {
		g, ok := ParseGenre(strings.TrimSpace(name))
		if !ok {
			return nil, &UnknownGenreError{Name: name}
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	return genres, nil
}
