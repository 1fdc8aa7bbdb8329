// Package service implements the operations behind the HTTP surface and
// the server CLI: campaign sync, flow push, assignment edits, offer refresh
// and campaign creation.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/refcache"
	"github.com/iudanet/keitarosync/internal/server/reconcile"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

//go:generate moq -out mocks_test.go . Upstream

// Service errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingReference = errors.New("missing reference data")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUpstreamNoResult = keitaro.ErrNoResult
	ErrFlowNotFound     = storage.ErrFlowNotFound
)

// Upstream is the tracker API consumed by the service.
type Upstream interface {
	GetOffers(ctx context.Context) []keitaro.Offer
	GetDomains(ctx context.Context) []keitaro.Domain
	GetSources(ctx context.Context) []keitaro.Source
	GetGroups(ctx context.Context) []keitaro.Group
	GetFlowActions(ctx context.Context) []keitaro.FlowAction
	GetCampaigns(ctx context.Context) []keitaro.Campaign
	GetCampaign(ctx context.Context, campaignID int64) *keitaro.Campaign
	GetFlows(ctx context.Context, campaignID int64) []keitaro.Flow
	CreateCampaign(ctx context.Context, payload keitaro.CampaignPayload) (*keitaro.Campaign, error)
	CreateFlow(ctx context.Context, payload keitaro.FlowPayload) (*keitaro.Flow, error)
	UpdateFlow(ctx context.Context, flowID int64, payload keitaro.FlowUpdatePayload) (*keitaro.Flow, error)
}

// CampaignDefaults are applied to every campaign created through the service.
type CampaignDefaults struct {
	CostType       string
	GeoRedirectURL string
	CookiesTTL     int
}

// Config configures a Service.
type Config struct {
	Campaign CampaignDefaults
	CacheTTL time.Duration
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		CacheTTL: refcache.DefaultTTL,
		Campaign: CampaignDefaults{
			CookiesTTL:     24,
			CostType:       "CPC",
			GeoRedirectURL: "https://www.google.com",
		},
	}
}

// Service wires the upstream client, the entity store and the reference cache.
type Service struct {
	upstream    Upstream
	store       storage.Store
	cache       refcache.Cache
	logger      *slog.Logger
	flows       *reconcile.FlowReconciler
	assignments *reconcile.AssignmentReconciler
	cfg         Config
}

// New creates a Service. A nil cache selects an in-process one.
func New(upstream Upstream, store storage.Store, cache refcache.Cache, cfg Config, logger *slog.Logger) *Service {
	if cache == nil {
		cache = refcache.NewMemory()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = refcache.DefaultTTL
	}
	defaults := DefaultConfig().Campaign
	if cfg.Campaign.CookiesTTL <= 0 {
		cfg.Campaign.CookiesTTL = defaults.CookiesTTL
	}
	if cfg.Campaign.CostType == "" {
		cfg.Campaign.CostType = defaults.CostType
	}
	if cfg.Campaign.GeoRedirectURL == "" {
		cfg.Campaign.GeoRedirectURL = defaults.GeoRedirectURL
	}

	return &Service{
		upstream:    upstream,
		store:       store,
		cache:       cache,
		logger:      logger,
		flows:       reconcile.NewFlowReconciler(upstream, logger),
		assignments: reconcile.NewAssignmentReconciler(logger),
		cfg:         cfg,
	}
}

// Ping checks the entity store.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
