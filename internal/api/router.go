package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/crestfin/admin-console/internal/api/handler"
	redisdb "github.com/crestfin/admin-console/internal/infrastructure/db/redis"
	"github.com/crestfin/admin-console/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin_gateway"))

	// --- Dependencies ---
	sessions := redisdb.NewCredentialStore(rdb, cfg.Session.TTL)
	proxy, err := handler.NewProxy(cfg.BackendBaseURL, sessions, cfg.Session.Cookie, cfg.HTTPTimeout, log)
	if err != nil {
		return nil, err
	}
	sessionHandler := handler.NewSessionHandler(sessions, cfg.Session.Cookie, cfg.Session.TTL, cfg.Env == "production")

	// --- Session handshake ---
	e.POST("/session", sessionHandler.Bind)
	e.GET("/session", sessionHandler.Status)
	e.DELETE("/session", sessionHandler.Unbind)

	// --- Backend proxy ---
	e.Any("/api/admin/*", proxy.Forward)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
