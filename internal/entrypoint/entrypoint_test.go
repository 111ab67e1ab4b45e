package entrypoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entities"
	"github.com/mrlokans/bookstore/internal/scheduler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
		Audit: config.Audit{
			Enabled:         true,
			DatabasePath:    filepath.Join(dir, "audit.db"),
			RetentionDays:   30,
			CleanupSchedule: config.DefaultAuditCleanupSchedule,
		},
		Snapshot: config.Snapshot{
			Enabled:  true,
			Dir:      filepath.Join(dir, "snapshots"),
			Schedule: config.DefaultSnapshotSchedule,
		},
	}
}

func serve(app *Application, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestNewApplication(t *testing.T) {
	t.Run("wires audit trail and scheduler", func(t *testing.T) {
		app, err := NewApplication(testConfig(t), "test")
		require.NoError(t, err)
		defer app.Shutdown(context.Background())

		require.NotNil(t, app.Audit)
		require.NotNil(t, app.Scheduler)
		assert.Equal(t, []string{scheduler.AuditCleanupJobName, scheduler.SnapshotJobName}, app.Scheduler.Jobs())

		w := serve(app, http.MethodPost, "/book",
			`{"title":"Dune","author":"Frank Herbert","year":1965,"price":20,"genres":["SCI_FI"]}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		app.Audit.Flush()

		w = serve(app, http.MethodPut, "/book?id=1&price=25", "")
		require.Equal(t, http.StatusOK, w.Code)

		app.Audit.Flush()
		history, err := app.Audit.History(1)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, entities.InventoryEventBookCreated, history[0].EventType)
		assert.Equal(t, entities.InventoryEventBookPriceUpdated, history[1].EventType)
		assert.NotEmpty(t, history[0].RequestID)
	})

	t.Run("snapshot job exports the live inventory", func(t *testing.T) {
		cfg := testConfig(t)
		app, err := NewApplication(cfg, "test")
		require.NoError(t, err)
		defer app.Shutdown(context.Background())

		w := serve(app, http.MethodPost, "/book",
			`{"title":"Akira","author":"Katsuhiro Otomo","year":1982,"price":30,"genres":["MANGA"]}`)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, app.Scheduler.RunNow(scheduler.SnapshotJobName))

		entries, err := os.ReadDir(cfg.Snapshot.Dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		content, err := os.ReadFile(filepath.Join(cfg.Snapshot.Dir, entries[0].Name()))
		require.NoError(t, err)
		assert.Contains(t, string(content), "Akira")
	})

	t.Run("audit and snapshots disabled", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Audit.Enabled = false
		cfg.Snapshot.Enabled = false

		app, err := NewApplication(cfg, "test")
		require.NoError(t, err)
		defer app.Shutdown(context.Background())

		assert.Nil(t, app.Audit)
		assert.Nil(t, app.Scheduler)
		assert.NoFileExists(t, cfg.Audit.DatabasePath)

		w := serve(app, http.MethodPost, "/book",
			`{"title":"Emma","author":"Jane Austen","year":1950,"price":5,"genres":["ROMANCE"]}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("read-only mode", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.ReadOnly.Enabled = true

		app, err := NewApplication(cfg, "test")
		require.NoError(t, err)
		defer app.Shutdown(context.Background())

		w := serve(app, http.MethodPost, "/book",
			`{"title":"Emma","author":"Jane Austen","year":1950,"price":5,"genres":["ROMANCE"]}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/books/total", "").Code)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Snapshot.Schedule = "every hour"

		_, err := NewApplication(cfg, "test")
		assert.Error(t, err)
	})

	t.Run("unusable audit database path", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Audit.DatabasePath = filepath.Join(t.TempDir(), "missing", "audit.db")

		_, err := NewApplication(cfg, "test")
		assert.Error(t, err)
	})
}

func TestApplication_ShutdownIsIdempotentForScheduler(t *testing.T) {
	app, err := NewApplication(testConfig(t), "test")
	require.NoError(t, err)

	app.Scheduler.Start(context.Background())
	assert.True(t, app.Scheduler.IsRunning())

	app.Shutdown(context.Background())
	assert.False(t, app.Scheduler.IsRunning())
	app.Scheduler.Stop()
}
