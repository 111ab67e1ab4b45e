package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookstore/internal/entities"
	"github.com/mrlokans/bookstore/internal/inventory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type auditCall struct {
	kind      string
	requestID string
	book      entities.Book
	oldPrice  float64
}

type recordingAuditLogger struct {
	mu    sync.Mutex
	calls []auditCall
}

func (r *recordingAuditLogger) record(call auditCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingAuditLogger) LogCreated(requestID string, book entities.Book) {
	r.record(auditCall{kind: "created", requestID: requestID, book: book})
}

func (r *recordingAuditLogger) LogPriceUpdated(requestID string, book entities.Book, oldPrice float64) {
	r.record(auditCall{kind: "price_updated", requestID: requestID, book: book, oldPrice: oldPrice})
}

func (r *recordingAuditLogger) LogDeleted(requestID string, book entities.Book) {
	r.record(auditCall{kind: "deleted", requestID: requestID, book: book})
}

type testServer struct {
	router *gin.Engine
	store  *inventory.Store
	audit  *recordingAuditLogger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := inventory.NewStore()
	auditLogger := &recordingAuditLogger{}
	router := NewRouter(RouterConfig{
		Store:          store,
		AuditLogger:    auditLogger,
		QuietAccessLog: true,
		Version:        "test",
	})
	return &testServer{router: router, store: store, audit: auditLogger}
}

func (s *testServer) do(method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createBook(t *testing.T, book map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(book)
	require.NoError(t, err)
	return s.do(http.MethodPost, "/book", body)
}

func (s *testServer) mustCreateBook(t *testing.T, book map[string]any) int {
	t.Helper()
	w := s.createBook(t, book)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Result int `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Result
}

func bookPayload(title, author string, year int, price float64, genres ...string) map[string]any {
	return map[string]any{
		"title":  title,
		"author": author,
		"year":   year,
		"price":  price,
		"genres": genres,
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response.ErrorMessage
}

func decodeBooks(t *testing.T, w *httptest.ResponseRecorder) []entities.Book {
	t.Helper()
	var response struct {
		Result []entities.Book `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response.Result
}

func decodeNumber(t *testing.T, w *httptest.ResponseRecorder) float64 {
	t.Helper()
	var response struct {
		Result float64 `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response.Result
}
