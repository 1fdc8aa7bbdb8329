// Package app собирает зависимости сервера из конфигурации: хранилище,
// кэш справочников, клиент трекера, сервис и HTTP роутер.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/keitarosync/internal/config"
	"github.com/iudanet/keitarosync/internal/httpretry"
	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/logging"
	"github.com/iudanet/keitarosync/internal/refcache"
	"github.com/iudanet/keitarosync/internal/server"
	"github.com/iudanet/keitarosync/internal/server/handlers"
	"github.com/iudanet/keitarosync/internal/server/service"
	"github.com/iudanet/keitarosync/internal/server/storage/sqlstore"
)

// App владеет ресурсами сервера
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Store   *sqlstore.Storage
	Cache   refcache.Cache
	Service *service.Service

	redis  *redis.Client
	router *server.Router
}

// New открывает хранилище (с миграциями), кэш и клиент трекера
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	store, err := sqlstore.New(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.Store = store

	cache, err := a.openCache(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Cache = cache

	retry := httpretry.NewRetryClient(
		&http.Client{Timeout: cfg.Keitaro.Timeout()},
		cfg.Keitaro.MaxRetries,
		httpretry.WithLogger(logging.WithModule(logger, "httpretry")),
	)
	upstream := keitaro.NewClient(cfg.Keitaro.BaseURL, cfg.Keitaro.APIKey, retry, logging.WithModule(logger, "keitaro"))

	a.Service = service.New(upstream, store, cache, service.Config{
		CacheTTL: cfg.Cache.TTL(),
		Campaign: service.CampaignDefaults{
			CostType:       cfg.Campaign.CostType,
			GeoRedirectURL: cfg.Campaign.GeoRedirectURL,
			CookiesTTL:     cfg.Campaign.CookiesTTL,
		},
	}, logging.WithModule(logger, "service"))

	return a, nil
}

// openCache выбирает backend кэша. Недоступный redis не мешает старту:
// промахи кэша читаются из трекера
func (a *App) openCache(ctx context.Context) (refcache.Cache, error) {
	switch a.Config.Cache.Backend {
	case config.CacheMemory, "":
		return refcache.NewMemory(), nil
	case config.CacheRedis:
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.Config.Cache.RedisAddr,
			Password: a.Config.Cache.RedisPassword,
			DB:       a.Config.Cache.RedisDB,
		})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.Logger.WarnContext(ctx, "redis is unavailable, reference data will be fetched from the tracker",
				slog.String("addr", a.Config.Cache.RedisAddr), slog.Any("error", err))
		}
		return refcache.NewRedis(a.redis, a.Config.Cache.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", a.Config.Cache.Backend)
	}
}

// Handler возвращает HTTP handler со всеми маршрутами
func (a *App) Handler(version string) http.Handler {
	if a.router != nil {
		return a.router
	}

	auth := a.Config.Auth
	operators := make(map[string]string, len(auth.Operators))
	for _, op := range auth.Operators {
		operators[op.Username] = op.PasswordHash
	}

	a.router = server.NewRouter(server.RouterConfig{
		Logger:      logging.WithModule(a.Logger, "http"),
		Service:     a.Service,
		DB:          a.Store,
		Version:     version,
		CORSOrigins: a.Config.Server.CORSOrigins,
		Auth: server.AuthConfig{
			Enabled:            auth.Enabled,
			Operators:          operators,
			LoginRatePerMinute: auth.LoginRatePerMinute,
			JWT: handlers.JWTConfig{
				Secret:         []byte(auth.JWTSecret),
				AccessTokenTTL: auth.AccessTokenTTL(),
			},
		},
	})
	return a.router
}

// Close освобождает ресурсы в обратном порядке
func (a *App) Close() error {
	var errs []error
	if a.router != nil {
		a.router.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
