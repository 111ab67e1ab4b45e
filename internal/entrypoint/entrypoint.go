package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookstore/internal/audit"
	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	auditrepo "github.com/mrlokans/bookstore/internal/database/audit"
	"github.com/mrlokans/bookstore/internal/exporters"
	http_controllers "github.com/mrlokans/bookstore/internal/http"
	"github.com/mrlokans/bookstore/internal/inventory"
	"github.com/mrlokans/bookstore/internal/readonly"
	"github.com/mrlokans/bookstore/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Application is the wired service: router plus everything it owns.
type Application struct {
	Router    *gin.Engine
	Store     *inventory.Store
	Audit     *audit.Service
	Scheduler *scheduler.Scheduler

	db *database.Database
}

// Shutdown stops background jobs, drains pending audit writes and closes
// the audit database.
func (a *Application) Shutdown(ctx context.Context) {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.Audit != nil {
		a.Audit.Flush()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("Error closing audit database: %v", err)
		}
	}
}

// NewApplication builds the inventory, the optional audit trail and
// scheduler, and the router on top of them.
func NewApplication(cfg *config.Config, version string) (*Application, error) {
	app := &Application{Store: inventory.NewStore()}

	routerCfg := http_controllers.RouterConfig{
		Store:   app.Store,
		Version: version,
	}

	if cfg.Audit.Enabled {
		db, err := database.NewDatabase(cfg.Audit.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize audit database: %w", err)
		}
		app.db = db
		app.Audit = audit.NewService(auditrepo.NewRepository(db.DB))
		routerCfg.AuditLogger = app.Audit
		log.Printf("Audit trail enabled at %s", cfg.Audit.DatabasePath)
	} else {
		log.Printf("Audit trail disabled")
	}

	if cfg.ReadOnly.Enabled {
		log.Printf("Read-only mode enabled - write operations will be blocked")
		routerCfg.ReadOnly = readonly.NewMiddleware(true)
	}

	sched, err := newScheduler(cfg, app)
	if err != nil {
		app.Shutdown(context.Background())
		return nil, err
	}
	app.Scheduler = sched

	app.Router = http_controllers.NewRouter(routerCfg)
	return app, nil
}

// newScheduler registers the enabled background jobs. Returns nil when
// there is nothing to schedule.
func newScheduler(cfg *config.Config, app *Application) (*scheduler.Scheduler, error) {
	var jobs []scheduler.Job

	if cfg.Snapshot.Enabled {
		exporter := exporters.NewSnapshotExporter(cfg.Snapshot.Dir)
		jobs = append(jobs, scheduler.NewSnapshotJob(cfg.Snapshot.Schedule, app.Store, exporter))
		log.Printf("Inventory snapshots enabled: %s -> %s", cfg.Snapshot.Schedule, cfg.Snapshot.Dir)
	}
	if app.Audit != nil && cfg.Audit.CleanupSchedule != "" {
		jobs = append(jobs, scheduler.NewAuditCleanupJob(cfg.Audit.CleanupSchedule, app.Audit, cfg.Audit.RetentionDays))
		log.Printf("Audit cleanup enabled: %s, retention %d days", cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
	}

	if len(jobs) == 0 {
		return nil, nil
	}

	sched := scheduler.NewScheduler()
	for _, job := range jobs {
		if err := sched.Register(job); err != nil {
			return nil, fmt.Errorf("failed to register job %s: %w", job.Name, err)
		}
	}
	return sched, nil
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// In-flight requests are done, so nothing else reaches the audit trail
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookstore v%s", version)

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	app, err := NewApplication(cfg, version)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	var schedCancel context.CancelFunc
	if app.Scheduler != nil {
		var schedCtx context.Context
		schedCtx, schedCancel = context.WithCancel(context.Background())
		app.Scheduler.Start(schedCtx)
	}

	onShutdown := func(ctx context.Context) {
		if schedCancel != nil {
			schedCancel()
		}
		app.Shutdown(ctx)
	}

	Serve(app.Router, cfg, onShutdown)
}
