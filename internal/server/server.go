// Package server assembles the record store HTTP service: repository, service,
// handlers and middleware on one echo instance.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"credit-tracker/internal/config"
	"credit-tracker/internal/database"
	"credit-tracker/internal/handlers"
	"credit-tracker/internal/middleware"
	"credit-tracker/internal/repositories"
	"credit-tracker/internal/services"
)

// Server is the record store HTTP service
type Server struct {
	Echo    *echo.Echo
	cfg     *config.Config
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New wires the service on db. Metrics are registered on reg and served from gatherer.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	accountRepo := repositories.NewAccountRepository(db.DB)
	accountService := services.NewAccountService(
		accountRepo,
		services.NewStoreEventLogger(logger),
		services.NewPrometheusMetrics(reg),
		logger,
	)

	h := &handlers.Handlers{
		Accounts:    handlers.NewAccountHandler(accountService),
		Diagnostics: handlers.NewDiagnosticsHandler(accountService),
		Health:      handlers.NewHealthCheckHandler(db),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader, middleware.UserIDHeader},
	}))
	e.Use(limiter.Middleware())
	e.Use(middleware.FixedIdentity(cfg.Server.DefaultUserID))

	h.RegisterRoutes(e.Group(""))
	h.RegisterRoutes(e.Group("/api/v1"))
	handlers.RegisterMetrics(e, gatherer)

	return &Server{Echo: e, cfg: cfg, limiter: limiter, logger: logger}
}

// Run serves until ctx is cancelled, then drains in-flight requests within the
// configured shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	go s.limiter.Run(ctx)

	srv := &http.Server{
		Addr:         s.cfg.Server.Address(),
		Handler:      s.Echo,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("record store listening", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down record store", slog.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}
	return nil
}
