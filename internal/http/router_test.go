package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/bookstore/internal/inventory"
	"github.com/mrlokans/bookstore/internal/readonly"
)

func TestNewRouter_UnknownEndpoints(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/unknown"},
		{http.MethodGet, "/books/"},
		{http.MethodGet, "/book/1"},
		{http.MethodPost, "/books"},
		{http.MethodPatch, "/book?id=1"},
		{http.MethodDelete, "/books/total"},
		{http.MethodPost, "/books/health"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			w := s.do(tt.method, tt.target, nil)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"errorMessage": "Error: Endpoint not found"}`, w.Body.String())
		})
	}
}

func TestNewRouter_Headers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/books/total", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestNewRouter_ReadOnlyMode(t *testing.T) {
	store := inventory.NewStore()
	year, price := 1965, 20.0
	_, err := store.Create(inventory.NewBook{
		Title: "Dune", Author: "Frank Herbert", Year: &year, Price: &price, Genres: []string{"SCI_FI"},
	})
	assert.NoError(t, err)

	router := NewRouter(RouterConfig{
		Store:          store,
		ReadOnly:       readonly.NewMiddleware(true),
		QuietAccessLog: true,
	})
	s := &testServer{router: router, store: store}

	t.Run("reads still work", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/books", nil).Code)
		assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/book?id=1", nil).Code)
	})

	t.Run("mutations are forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.createBook(t, bookPayload("Emma", "Jane Austen", 1950, 5, "ROMANCE")).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/book?id=1&price=3", nil).Code)
		assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/book?id=1", nil).Code)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("unknown endpoints are still not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/nowhere", nil).Code)
	})
}

func TestNewRouter_RecoversFromPanic(t *testing.T) {
	router := NewRouter(RouterConfig{Store: panickingStore{}, QuietAccessLog: true})

	req := httptest.NewRequest(http.MethodGet, "/books/total", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errorMessage": "internal server error"}`, w.Body.String())
}

type panickingStore struct {
	BookStore
}

func (panickingStore) Count(inventory.Criteria) (int, error) {
	panic("boom")
}

func TestGetRequestID(t *testing.T) {
	t.Run("reuses incoming header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		var seen string
		router.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})

	t.Run("generates id for oversized header", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		var seen string
		router.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, strings.Repeat("x", 100))
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Len(t, seen, 36)
	})

	t.Run("empty without middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})
}
