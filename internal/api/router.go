package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/AlixRomain/P7-Web-Service/internal/api/handler"
	"github.com/AlixRomain/P7-Web-Service/internal/api/middleware"
	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

// PageDefaults holds the default page size of each collection route.
type PageDefaults struct {
	Clients pagination.Defaults
	Mobiles pagination.Defaults
	Users   pagination.Defaults
}

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Logger    zerolog.Logger
	JWTSecret string
	Pages     PageDefaults

	Clients ports.ClientService
	Mobiles ports.MobileService
	Users   ports.UserService
	Auth    ports.AuthService

	// Credentials reloads the account named by a bearer token.
	Credentials ports.CredentialStore

	// IPExtractor identifies the client for rate limiting. Nil means the
	// socket address, ignoring forwarding headers.
	IPExtractor echo.IPExtractor

	// LoginLimiter throttles login_check per IP. Nil disables throttling.
	LoginLimiter middleware.Limiter

	// HealthChecks are run by the readiness probe, keyed by dependency name.
	HealthChecks map[string]func(context.Context) error
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.IPExtractor = deps.IPExtractor
	if e.IPExtractor == nil {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	// HTTP metrics go to a registry owned by this instance; /metrics serves
	// it next to the default registry holding the domain counters.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "catalog",
		Registerer: registry,
	}))
	// Inside the metrics middleware so errors are rendered before the
	// status is recorded.
	e.Use(middleware.RequestLogger(deps.Logger))

	auth := middleware.Auth(deps.JWTSecret, deps.Credentials)
	user := []echo.MiddlewareFunc{auth, middleware.RequireRole(domain.RoleUser)}
	admin := []echo.MiddlewareFunc{auth, middleware.RequireRole(domain.RoleAdmin)}

	clients := handler.NewClientHandler(deps.Clients, deps.Pages.Clients)
	mobiles := handler.NewMobileHandler(deps.Mobiles, deps.Pages.Mobiles)
	users := handler.NewUserHandler(deps.Users, deps.Pages.Users)
	login := handler.NewAuthHandler(deps.Auth)

	// --- Auth ---
	var loginMW []echo.MiddlewareFunc
	if deps.LoginLimiter != nil {
		loginMW = append(loginMW, middleware.RateLimit(deps.LoginLimiter, "login", deps.Logger))
	}
	e.POST("/api/login_check", login.Login, loginMW...).Name = handler.RouteLogin

	// --- Clients ---
	e.GET("/api/clients", clients.List, admin...).Name = handler.RouteClientList
	e.GET("/api/clients/:id", clients.Show, user...).Name = handler.RouteClientShow
	e.GET("/api/client/:id", clients.Item, user...).Name = handler.RouteClientItem
	e.POST("/api/admin/client", clients.Create, admin...).Name = handler.RouteClientCreate
	e.PUT("/api/client/:id", clients.Update, user...).Name = handler.RouteClientUpdate
	e.DELETE("/api/admin/client/:id", clients.Delete, admin...).Name = handler.RouteClientDelete

	// --- Mobiles ---
	e.GET("/api/mobiles", mobiles.List, user...).Name = handler.RouteMobileList
	e.GET("/api/mobiles/:id", mobiles.Show, user...).Name = handler.RouteMobileShow
	e.POST("/api/admin/mobile", mobiles.Create, admin...).Name = handler.RouteMobileCreate
	e.PUT("/api/admin/mobile/:id", mobiles.Update, admin...).Name = handler.RouteMobileUpdate
	e.DELETE("/api/admin/mobile/:id", mobiles.Delete, admin...).Name = handler.RouteMobileDelete

	// --- Users ---
	e.GET("/api/users", users.List, user...).Name = handler.RouteUserList
	e.GET("/api/admin/users-customer/:id", users.ListByClient, admin...).Name = handler.RouteUserListAdmin
	e.GET("/api/users/:id", users.Show, user...).Name = handler.RouteUserShow
	e.POST("/api/user", users.Create, user...).Name = handler.RouteUserCreate
	e.POST("/api/admin/user/:id", users.CreateForClient, admin...).Name = handler.RouteUserCreateByAd
	e.PUT("/api/user/:id", users.Update, user...).Name = handler.RouteUserUpdate
	e.DELETE("/api/user/:id", users.Delete, user...).Name = handler.RouteUserDelete

	// --- Health probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(deps.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, registry},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
