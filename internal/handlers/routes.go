package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every HTTP handler the record store serves
type Handlers struct {
	Accounts    *AccountHandler
	Diagnostics *DiagnosticsHandler
	Health      *HealthCheckHandler
}

// RegisterRoutes binds the record store endpoints onto g. Callers mount the
// same set at the root and under /api/v1.
func (h *Handlers) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health.HealthCheck)
	g.GET("/diagnostics", h.Diagnostics.GetDiagnostics)

	accounts := g.Group("/accounts")
	accounts.GET("", h.Accounts.ListAccounts)
	accounts.POST("", h.Accounts.CreateAccount)
	accounts.GET("/summary", h.Accounts.GetSummary)
	accounts.GET("/upcoming", h.Accounts.GetUpcomingPayments)
	accounts.GET("/export.csv", h.Accounts.ExportCSV)
	accounts.POST("/reorder", h.Accounts.ReorderAccount)
	accounts.POST("/migrate", h.Accounts.MigrateAccounts)
	accounts.PUT("/:id", h.Accounts.UpdateAccount)
	accounts.DELETE("/:id", h.Accounts.DeleteAccount)
}

// RegisterMetrics exposes the Prometheus registry at /metrics
func RegisterMetrics(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
