// Package server собирает HTTP поверхность синхронизатора: роутер, middleware и handlers.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iudanet/keitarosync/internal/server/handlers"
	"github.com/iudanet/keitarosync/internal/server/middleware"
)

// AuthConfig настройки аутентификации операторов
type AuthConfig struct {
	Operators          map[string]string // username -> argon2id hash
	JWT                handlers.JWTConfig
	LoginRatePerMinute int
	Enabled            bool
}

// RouterConfig зависимости роутера
type RouterConfig struct {
	Logger      *slog.Logger
	Service     handlers.Service
	DB          handlers.Pinger
	Version     string
	CORSOrigins []string
	Auth        AuthConfig
}

// Router http.Handler с ресурсами, которые нужно освободить при остановке
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close останавливает фоновые задачи роутера
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter создает chi роутер со всеми маршрутами API
func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestIDHeader)
	r.Use(chimw.RealIP)
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/health"}))

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	health := handlers.NewHealthHandler(logger, cfg.DB, cfg.Version)
	campaigns := handlers.NewCampaignHandler(logger, cfg.Service)
	flows := handlers.NewFlowHandler(logger, cfg.Service)
	reference := handlers.NewReferenceHandler(logger, cfg.Service)

	router := &Router{Handler: r}

	r.Get("/health", health.Health)

	if cfg.Auth.Enabled {
		rate := cfg.Auth.LoginRatePerMinute
		if rate <= 0 {
			rate = 10
		}
		router.limiter = middleware.NewRateLimiter(rate, time.Minute, logger)
		auth := handlers.NewAuthHandler(logger, cfg.Auth.Operators, cfg.Auth.JWT)
		r.With(router.limiter.Middleware).Post("/auth/login", auth.Login)
	}

	r.Group(func(r chi.Router) {
		if cfg.Auth.Enabled {
			r.Use(middleware.AuthMiddleware(logger, cfg.Auth.JWT))
		}

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", campaigns.List)
			r.Post("/", campaigns.Create)
			r.Get("/{id}", campaigns.Get)
			r.Get("/{id}/flows", campaigns.Flows)
		})

		r.Route("/flows/{id}", func(r chi.Router) {
			r.Put("/", flows.Push)
			r.Post("/offer", flows.UpsertOffer)
			r.Get("/offer_flows", flows.OfferFlows)
		})

		r.Get("/reference", reference.Reference)
		r.Get("/offers", reference.Offers)
	})

	return router
}
