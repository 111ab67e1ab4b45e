package inventory

import (
	"errors"
	"fmt"
	"strconv"
)

// Error kinds. Match with errors.Is; the concrete error is a *ValidationError
// whose message names the offending id, title or value.
var (
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidRange   = errors.New("value out of accepted range")
	ErrDuplicateTitle = errors.New("duplicate title")
	ErrInvalidGenre   = errors.New("invalid genre")
	ErrNotFound       = errors.New("book not found")
	ErrBadRequest     = errors.New("bad request")
)

// ValidationError carries a client-facing message for one of the error kinds above.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewBadRequestError reports malformed client input detected at the transport boundary.
func NewBadRequestError(message string) *ValidationError {
	return &ValidationError{Kind: ErrBadRequest, Message: message}
}

func missingFieldError(field string) *ValidationError {
	return newError(ErrMissingField, "Error: Missing required book information [%s]", field)
}

func yearRangeError(year int) *ValidationError {
	return newError(ErrInvalidRange,
		"Error: Can't create new Book that its year [%d] is not in the accepted range [%d -> %d]",
		year, MinYear, MaxYear)
}

func createPriceError(price float64) *ValidationError {
	return newError(ErrInvalidRange, "Error: Can't create new Book with non-positive price [%s]", formatPrice(price))
}

func updatePriceError(id int, price float64) *ValidationError {
	return newError(ErrInvalidRange,
		"Error: price update for book [%d] must be a positive number, got [%s]", id, formatPrice(price))
}

func duplicateTitleError(title string) *ValidationError {
	return newError(ErrDuplicateTitle, "Error: Book with the title [%s] already exists in the system", title)
}

func invalidGenreError(name string) *ValidationError {
	return newError(ErrInvalidGenre, "Error: Invalid genre in the list [%s]", name)
}

func notFoundError(id int) *ValidationError {
	return newError(ErrNotFound, "Error: no such Book with id %d", id)
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
