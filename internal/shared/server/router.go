package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/analytics"
	"assessment-backend/internal/automation"
	"assessment-backend/internal/maturity"
	"assessment-backend/internal/roi"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/status"
)

// RouterDeps carries everything the router needs wired in.
type RouterDeps struct {
	Config            config.Config
	DB                *sql.DB
	MaturityHandler   *maturity.Handler
	ROIHandler        *roi.Handler
	AutomationHandler *automation.Handler
	AnalyticsHandler  *analytics.Handler
	StatusHandler     *status.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"message": "Assessment API - ready"})
	})
	api.GET("/health", healthHandler(deps.DB))

	deps.StatusHandler.RegisterRoutes(api)
	deps.MaturityHandler.RegisterRoutes(api)
	deps.ROIHandler.RegisterRoutes(api)
	deps.AutomationHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)

	return r
}

// healthHandler reports service and store connectivity. A store failure
// degrades the response instead of failing it, so callers can tell "service
// up, store down" from "service down".
func healthHandler(database *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status":   "healthy",
			"service":  "assessment-api",
			"database": "connected",
		}
		if database == nil {
			resp["database"] = "memory"
			respond.JSON(c, http.StatusOK, resp)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.PingContext(ctx); err != nil {
			resp["status"] = "degraded"
			resp["database"] = "error"
			resp["error"] = err.Error()
		}
		respond.JSON(c, http.StatusOK, resp)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
