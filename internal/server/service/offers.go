package service

import (
	"context"
	"log/slog"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/refcache"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

// OfferRefreshResult summarizes an offer refresh.
type OfferRefreshResult struct {
	Offers   []keitaro.Offer
	Inserted int
	Renamed  int
	NoResult bool
}

// RefreshOffers pulls the upstream offer list, stores offers not yet known
// locally, replaces placeholder or stale names and refreshes the cached list.
func (s *Service) RefreshOffers(ctx context.Context) (*OfferRefreshResult, error) {
	remote := s.upstream.GetOffers(ctx)
	if remote == nil {
		return &OfferRefreshResult{Offers: []keitaro.Offer{}, NoResult: true}, nil
	}

	result := &OfferRefreshResult{Offers: remote}

	err := s.store.WithTx(ctx, func(tx storage.Store) error {
		local, err := tx.ListOffers(ctx)
		if err != nil {
			return err
		}
		names := make(map[int64]string, len(local))
		for _, o := range local {
			names[o.ExternalID] = o.Name
		}

		var missing, renamed []models.Offer
		for _, o := range remote {
			name, ok := names[o.ID]
			switch {
			case !ok:
				missing = append(missing, models.Offer{ExternalID: o.ID, Name: o.Name})
				names[o.ID] = o.Name
			case o.Name != "" && name != o.Name:
				renamed = append(renamed, models.Offer{ExternalID: o.ID, Name: o.Name})
			}
		}

		if result.Inserted, err = tx.InsertOffers(ctx, missing); err != nil {
			return err
		}
		result.Renamed, err = tx.RenameOffers(ctx, renamed)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, refcache.KeyOffers, remote, s.cfg.CacheTTL); err != nil {
		s.logger.WarnContext(ctx, "reference cache write failed", slog.String("key", refcache.KeyOffers), slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "offers refreshed",
		slog.Int("received", len(remote)),
		slog.Int("inserted", result.Inserted),
		slog.Int("renamed", result.Renamed))

	return result, nil
}
