package http

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookstore/internal/inventory"
)

// --- Response Types ---

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// ResultResponse wraps the payload of every successful JSON response.
type ResultResponse struct {
	Result any `json:"result"`
}

// --- Response Helpers ---

func respondResult(c *gin.Context, result any) {
	c.JSON(http.StatusOK, ResultResponse{Result: result})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{ErrorMessage: message})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, "internal server error")
}

// respondInventoryError translates an inventory error into its HTTP status.
func respondInventoryError(c *gin.Context, err error, context string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		respondInternalError(c, err, context)
		return
	}
	respondError(c, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, inventory.ErrMissingField),
		errors.Is(err, inventory.ErrInvalidGenre),
		errors.Is(err, inventory.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrInvalidRange),
		errors.Is(err, inventory.ErrDuplicateTitle):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// --- Parameter Parsing ---

// queryValue returns the trimmed query parameter and whether it carries a value.
// Empty values are treated as absent.
func queryValue(c *gin.Context, name string) (string, bool) {
	raw := strings.TrimSpace(c.Query(name))
	return raw, raw != ""
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(raw)
}

// parsePrice accepts any finite decimal number.
func parsePrice(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}

// parseQueryID extracts the book id from the query string.
// Returns the parsed id or responds with a 400 error and returns 0, false.
func parseQueryID(c *gin.Context) (int, bool) {
	raw, ok := queryValue(c, "id")
	if !ok {
		respondBadRequest(c, "Error: Missing book id")
		return 0, false
	}
	id, err := parseInt(raw)
	if err != nil {
		respondBadRequest(c, "Error: Invalid book id ["+raw+"]")
		return 0, false
	}
	return id, true
}
