package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/homebase/household-api/docs"
	"github.com/homebase/household-api/internal/api/handler"
	"github.com/homebase/household-api/internal/api/middleware"
	"github.com/homebase/household-api/internal/core/domain"
	"github.com/homebase/household-api/internal/core/ports"
	"github.com/homebase/household-api/internal/infrastructure/http/handlers"
	"github.com/homebase/household-api/internal/pkg/config"
)

// Dependencies are the services the router exposes. They are built once in
// main and shared by all requests.
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger

	Tokens     ports.TokenVerifier
	Auth       ports.AuthService
	Accounts   ports.AccountService
	Appliances ports.OwnedService[domain.Appliance]
	Bills      ports.OwnedService[domain.Bill]
	Inventory  ports.OwnedService[domain.InventoryItem]
	Tasks      ports.OwnedService[domain.Task]
	Images     handler.ImageStore

	// Readiness holds the dependency probes behind /health/ready.
	Readiness map[string]handlers.Checker
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// HTTP metrics live in a per-router registry so that several routers can
	// coexist in one process; /metrics serves it next to the default one.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "household",
		Subsystem:  "http",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
		},
	}))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit(cfg.BodyLimit))

	// --- Operational routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Upload.Dir != "" {
		e.Static("/uploads", cfg.Upload.Dir)
	}

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Images)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	gate := []echo.MiddlewareFunc{
		middleware.Auth(deps.Tokens),
		middleware.RBAC(domain.Roles...),
	}

	accountHandler := handler.NewAccountHandler(deps.Accounts, deps.Images)
	e.GET("/me", accountHandler.Me, gate...)
	users := e.Group("/user", gate...)
	users.PUT("/:id", accountHandler.UpdateProfile)
	users.PUT("/:id/password", accountHandler.ChangePassword)
	users.PUT("/:id/email", accountHandler.ChangeEmail)

	handler.NewOwnedHandler(deps.Appliances, handler.ApplianceSchema).Mount(e.Group("/appliances", gate...))
	handler.NewOwnedHandler(deps.Bills, handler.BillSchema).Mount(e.Group("/bills", gate...))
	handler.NewOwnedHandler(deps.Inventory, handler.InventorySchema).Mount(e.Group("/inventory", gate...))
	handler.NewOwnedHandler(deps.Tasks, handler.TaskSchema).Mount(e.Group("/tasks", gate...))

	return e
}

// requestLogger emits one zerolog event per request. Errors are handed to the
// error handler first so the logged status is the one sent to the client.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
