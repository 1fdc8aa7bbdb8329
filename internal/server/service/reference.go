package service

import (
	"context"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/refcache"
)

// ReferenceData is the upstream data needed to build a campaign.
type ReferenceData struct {
	Domains     []keitaro.Domain     `json:"domains"`
	Offers      []keitaro.Offer      `json:"offers"`
	Sources     []keitaro.Source     `json:"sources"`
	Groups      []keitaro.Group      `json:"groups"`
	FlowActions []keitaro.FlowAction `json:"flow_actions"`
}

// ReferenceData returns domains, offers, traffic sources, groups and flow
// actions, served from the cache while fresh. A list the upstream failed
// to deliver is empty and is fetched again on the next call.
func (s *Service) ReferenceData(ctx context.Context) ReferenceData {
	return ReferenceData{
		Domains:     cached(ctx, s, refcache.KeyDomains, s.upstream.GetDomains),
		Offers:      cached(ctx, s, refcache.KeyOffers, s.upstream.GetOffers),
		Sources:     cached(ctx, s, refcache.KeySources, s.upstream.GetSources),
		Groups:      cached(ctx, s, refcache.KeyGroups, s.upstream.GetGroups),
		FlowActions: cached(ctx, s, refcache.KeyFlowActions, s.upstream.GetFlowActions),
	}
}

// ListCampaigns returns upstream campaigns through the cache.
func (s *Service) ListCampaigns(ctx context.Context) []keitaro.Campaign {
	return cached(ctx, s, refcache.KeyCampaigns, s.upstream.GetCampaigns)
}

// GetCampaign returns one upstream campaign.
func (s *Service) GetCampaign(ctx context.Context, campaignID int64) (*keitaro.Campaign, error) {
	campaign := s.upstream.GetCampaign(ctx, campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

func cached[T any](ctx context.Context, s *Service, key string, get func(context.Context) []T) []T {
	items, ok := refcache.Fetch(ctx, s.cache, s.logger, key, s.cfg.CacheTTL, func(ctx context.Context) ([]T, bool) {
		items := get(ctx)
		return items, items != nil
	})
	if !ok || items == nil {
		return []T{}
	}
	return items
}
