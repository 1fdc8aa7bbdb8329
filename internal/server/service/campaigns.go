package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/refcache"
	"github.com/iudanet/keitarosync/internal/server/reconcile"
	"github.com/iudanet/keitarosync/internal/validation"
)

// Upstream values used for new campaigns and their default flows.
const (
	campaignTypePosition = "position"
	stateActive          = "active"
	flowTypeForced       = "forced"
	flowTypeDefault      = "default"
	schemaLandings       = "landings"
	filterCountry        = "country"
	filterModeAccept     = "accept"
	defaultOfferShare    = 100
)

// CampaignInput is an operator request to create a campaign.
type CampaignInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Country string `json:"country" validate:"required,iso3166_1_alpha2"`
	OfferID int64  `json:"offer_id" validate:"required,gt=0"`
}

// CampaignCreated is the outcome of CreateCampaign. FlowErrors lists the
// names of default flows the upstream refused to create.
type CampaignCreated struct {
	Campaign   *keitaro.Campaign `json:"campaign"`
	Flows      []keitaro.Flow    `json:"flows"`
	FlowErrors []string          `json:"flow_errors"`
}

// CreateCampaign creates a campaign on the first domain, traffic source
// and group known upstream, then adds a geo redirect flow and an offer flow.
// Failing to create a flow does not fail the call.
func (s *Service) CreateCampaign(ctx context.Context, in CampaignInput) (*CampaignCreated, error) {
	in.Country = strings.ToUpper(strings.TrimSpace(in.Country))
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	ref := s.ReferenceData(ctx)

	var missing []string
	if len(ref.Domains) == 0 {
		missing = append(missing, "domains")
	}
	if len(ref.Sources) == 0 {
		missing = append(missing, "traffic sources")
	}
	offer := findOffer(ref.Offers, in.OfferID)
	if offer == nil {
		missing = append(missing, "offers")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingReference, strings.Join(missing, ", "))
	}

	payload := keitaro.CampaignPayload{
		Alias:           BuildAlias(in.Name),
		Name:            in.Name,
		Type:            campaignTypePosition,
		State:           stateActive,
		CookiesTTL:      s.cfg.Campaign.CookiesTTL,
		CostType:        s.cfg.Campaign.CostType,
		DomainID:        ref.Domains[0].ID,
		TrafficSourceID: ref.Sources[0].ID,
		Notes:           "Country: " + in.Country,
	}
	if len(ref.Groups) > 0 {
		payload.GroupID = ref.Groups[0].ID
	}

	campaign, err := s.upstream.CreateCampaign(ctx, payload)
	if err != nil {
		return nil, err
	}
	if campaign.ID == 0 {
		return nil, fmt.Errorf("%w: empty campaign id", ErrUpstreamNoResult)
	}

	if err := s.cache.Invalidate(ctx, refcache.KeyCampaigns); err != nil {
		s.logger.WarnContext(ctx, "reference cache invalidate failed", slog.Any("error", err))
	}

	result := &CampaignCreated{Campaign: campaign, Flows: []keitaro.Flow{}, FlowErrors: []string{}}
	flows := []keitaro.FlowPayload{
		s.geoRedirectFlow(campaign.ID, in.Country, ref.FlowActions),
		offerFlow(campaign.ID, offer, ref.FlowActions),
	}
	for _, fp := range flows {
		created, err := s.upstream.CreateFlow(ctx, fp)
		if err != nil {
			result.FlowErrors = append(result.FlowErrors, fp.Name)
			continue
		}
		result.Flows = append(result.Flows, *created)
	}

	level := slog.LevelInfo
	if len(result.FlowErrors) > 0 {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "campaign created",
		slog.Int64("campaign_id", campaign.ID),
		slog.String("alias", payload.Alias),
		slog.Any("flow_errors", result.FlowErrors))

	return result, nil
}

func (s *Service) geoRedirectFlow(campaignID int64, country string, actions []keitaro.FlowAction) keitaro.FlowPayload {
	return keitaro.FlowPayload{
		CampaignID:    campaignID,
		Schema:        reconcile.SchemaRedirect,
		Type:          flowTypeForced,
		Name:          fmt.Sprintf("%d-geo-redirect", campaignID),
		ActionType:    reconcile.PickAction(actions, reconcile.SchemaRedirect),
		ActionOptions: map[string]any{"url": s.cfg.Campaign.GeoRedirectURL},
		Comments:      "Auto-generated redirect for selected country",
		State:         stateActive,
		Filters: []keitaro.FlowFilter{{
			Name:    filterCountry,
			Mode:    filterModeAccept,
			Payload: []string{country},
		}},
	}
}

func offerFlow(campaignID int64, offer *keitaro.Offer, actions []keitaro.FlowAction) keitaro.FlowPayload {
	label := offer.Name
	if label == "" {
		label = fmt.Sprint(offer.ID)
	}
	return keitaro.FlowPayload{
		CampaignID: campaignID,
		Schema:     schemaLandings,
		Type:       flowTypeDefault,
		Name:       fmt.Sprintf("%d-offer", campaignID),
		ActionType: reconcile.PickAction(actions, schemaLandings),
		Comments:   "Auto flow for offer " + label,
		State:      stateActive,
		Offers: []keitaro.PayloadOffer{{
			OfferID: offer.ID,
			Share:   defaultOfferShare,
			State:   keitaro.OfferStateActive,
		}},
	}
}

func findOffer(offers []keitaro.Offer, id int64) *keitaro.Offer {
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i]
		}
	}
	return nil
}
