package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/api"
	"github.com/AlixRomain/P7-Web-Service/internal/api/middleware"
	"github.com/AlixRomain/P7-Web-Service/internal/core/pagination"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
	"github.com/AlixRomain/P7-Web-Service/internal/core/service"
	"github.com/AlixRomain/P7-Web-Service/internal/infrastructure/config"
	"github.com/AlixRomain/P7-Web-Service/internal/infrastructure/db"
	redisstore "github.com/AlixRomain/P7-Web-Service/internal/infrastructure/db/redis"
	"github.com/AlixRomain/P7-Web-Service/pkg/logger"

	_ "github.com/AlixRomain/P7-Web-Service/docs" // Swagger docs
)

const shutdownTimeout = 10 * time.Second

// @title                       Catalog API
// @version                     1.0
// @description                 Clients, their users and the mobile catalog they browse.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "catalog-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "catalog-api",
	})

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("store close failed")
		}
	}()
	log.Info().Str("driver", store.Driver).Msg("store ready")

	checks := map[string]func(context.Context) error{store.Driver: store.Ping}

	var (
		cache   ports.MobileCache
		limiter middleware.Limiter
	)
	if cfg.Redis.Enabled {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()

		cache = redisstore.NewMobileCache(rdb, cfg.Redis.CacheTTL)
		limiter = redisstore.NewRateLimiter(rdb, "login", cfg.Redis.LoginRateLimit, cfg.Redis.LoginRateWindow)
		checks["redis"] = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis ready")
	}

	authService := service.NewAuthService(store.Users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost, log)
	if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	ipExtractor, err := api.NewIPExtractor(cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	e := api.NewRouter(api.Dependencies{
		Logger:    log,
		JWTSecret: cfg.Auth.JWTSecret,
		Pages:     pageDefaults(cfg.Pagination),
		Clients:   service.NewClientService(store.Clients, store.Users, log),
		Mobiles:   service.NewMobileService(store.Mobiles, cache, log),
		Users:     service.NewUserService(store.Users, store.Clients, cfg.Auth.BcryptCost, log),
		Auth:      authService,

		Credentials:  store.Users,
		IPExtractor:  ipExtractor,
		LoginLimiter: limiter,
		HealthChecks: checks,
	})

	return serve(ctx, e, ":"+cfg.Port, log)
}

func pageDefaults(p config.PaginationConfig) api.PageDefaults {
	return api.PageDefaults{
		Clients: pagination.Defaults{Limit: p.ClientsLimit, MaxLimit: p.MaxLimit},
		Mobiles: pagination.Defaults{Limit: p.MobilesLimit, MaxLimit: p.MaxLimit},
		Users:   pagination.Defaults{Limit: p.UsersLimit, MaxLimit: p.MaxLimit},
	}
}

// serve runs the server until ctx is cancelled, then drains in-flight
// requests for up to shutdownTimeout.
func serve(ctx context.Context, e *echo.Echo, addr string, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
