package handlers

import (
	"log"
	"strings"

	"sport-tracker-api/config"
	"sport-tracker-api/middleware"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/websocket"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the wired core the HTTP surface serves.
type Deps struct {
	Engine   *state.Engine
	Saver    *storage.Writer
	Notifier notify.Notifier
	Hub      *websocket.Hub
}

// NewRouter assembles the gin engine: middleware chain, the View
// Coordinator contract endpoints, the WebSocket refresh feed and
// Prometheus metrics.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	// Structured request ID and JSON access logs
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	// Panic recovery
	r.Use(gin.Recovery())

	// Configure trusted proxies for correct client IP handling in production
	if cfg.HTTP.TrustedProxies != "" {
		parts := strings.Split(cfg.HTTP.TrustedProxies, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := r.SetTrustedProxies(parts); err != nil {
			log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
		}
	} else {
		// Default to loopback only; override via TRUSTED_PROXIES in production
		_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	}

	r.Use(middleware.CORSMiddleware())
	// Apply rate limiting globally after CORS but before routes
	r.Use(middleware.RateLimitMiddleware())

	activitiesHandler := NewActivitiesHandler(deps.Engine, deps.Saver, deps.Notifier)
	dashboardHandler := NewDashboardHandler(deps.Engine, deps.Saver, deps.Notifier)
	logsHandler := NewLogsHandler(deps.Engine, deps.Saver, deps.Notifier)
	analyticsHandler := NewAnalyticsHandler(deps.Engine)
	transferHandler := NewTransferHandler(deps.Engine, deps.Saver, deps.Notifier)

	r.GET("/health", HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if deps.Hub != nil {
		r.GET("/ws", websocket.ServeWS(deps.Hub))
	}

	r.GET("/activities", activitiesHandler.ListActivities)
	r.POST("/activities", activitiesHandler.CreateActivity)
	r.PATCH("/activities/:id", activitiesHandler.UpdateActivity)
	r.DELETE("/activities/:id", activitiesHandler.DeleteActivity)
	r.GET("/activities/:id/series", analyticsHandler.GetSeries)

	r.GET("/dashboard", dashboardHandler.GetDashboard)
	r.GET("/date", dashboardHandler.GetDate)
	r.POST("/date/shift", dashboardHandler.ShiftDate)
	r.PUT("/date", dashboardHandler.SetDate)
	r.PUT("/view", dashboardHandler.SetView)

	r.PUT("/logs/:date/:activityId", logsHandler.SetValue)
	r.POST("/logs/:date/:activityId/adjust", logsHandler.Adjust)

	r.GET("/state/export", transferHandler.Export)
	r.POST("/state/import", transferHandler.Import)

	return r
}
