package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/analytics"
	"assessment-backend/internal/automation"
	"assessment-backend/internal/maturity"
	"assessment-backend/internal/roi"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/server"
	"assessment-backend/internal/shared/storage/db"
	"assessment-backend/internal/status"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	MaturityRepo   maturity.Repo
	ROIRepo        roi.Repo
	AutomationRepo automation.Repo
	StatusRepo     status.Repo

	MaturityService   *maturity.Service
	ROIService        *roi.Service
	AutomationService *automation.Service
	AnalyticsService  *analytics.Service
	StatusService     *status.Service
}

// Build prepares shared dependencies and wires the router. With an empty
// DATABASE_URL in dev-like environments it falls back to in-memory
// repositories so the API can run without a database.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}

	if sqlDB != nil {
		app.MaturityRepo = &maturity.PGRepo{DB: sqlDB}
		app.ROIRepo = &roi.PGRepo{DB: sqlDB}
		app.AutomationRepo = &automation.PGRepo{DB: sqlDB}
		app.StatusRepo = &status.PGRepo{DB: sqlDB}
	} else {
		app.MaturityRepo = maturity.NewMemoryRepo()
		app.ROIRepo = roi.NewMemoryRepo()
		app.AutomationRepo = automation.NewMemoryRepo()
		app.StatusRepo = status.NewMemoryRepo()
	}

	app.MaturityService = &maturity.Service{Repo: app.MaturityRepo}
	app.ROIService = &roi.Service{Repo: app.ROIRepo}
	app.AutomationService = &automation.Service{Repo: app.AutomationRepo}
	app.AnalyticsService = analytics.NewService(app.MaturityRepo, app.ROIRepo, app.AutomationRepo)
	app.StatusService = &status.Service{Repo: app.StatusRepo}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            cfg,
		DB:                sqlDB,
		MaturityHandler:   maturity.NewHandler(app.MaturityService),
		ROIHandler:        roi.NewHandler(app.ROIService),
		AutomationHandler: automation.NewHandler(app.AutomationService),
		AnalyticsHandler:  analytics.NewHandler(app.AnalyticsService),
		StatusHandler:     status.NewHandler(app.StatusService),
	})

	return app, nil
}

// Close releases the store handle.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
