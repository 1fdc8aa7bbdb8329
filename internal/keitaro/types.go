package keitaro

import "encoding/json"

// Offer is an offer as returned by GET /offers.
type Offer struct {
	ActionOptions       map[string]any      `json:"action_options"`
	Name                string              `json:"name"`
	ActionType          string              `json:"action_type"`
	ActionPayload       string              `json:"action_payload"`
	PayoutCurrency      string              `json:"payout_currency"`
	PayoutType          string              `json:"payout_type"`
	State               string              `json:"state"`
	CreatedAt           string              `json:"created_at"`
	UpdatedAt           string              `json:"updated_at"`
	Notes               string              `json:"notes"`
	AffiliateNetwork    string              `json:"affiliate_network"`
	Country             []string            `json:"country"`
	Values              json.RawMessage     `json:"values"`
	ID                  int64               `json:"id"`
	GroupID             int64               `json:"group_id"`
	AffiliateNetworkID  int64               `json:"affiliate_network_id"`
	PayoutValue         float64             `json:"payout_value"`
	PayoutAuto          bool                `json:"payout_auto"`
	PayoutUpsell        bool                `json:"payout_upsell"`
}

// Domain is a tracker domain.
type Domain struct {
	Name           string `json:"name"`
	NetworkStatus  string `json:"network_status"`
	State          string `json:"state"`
	Status         string `json:"status"`
	Group          string `json:"group"`
	Notes          string `json:"notes"`
	ID             int64  `json:"id"`
	GroupID        int64  `json:"group_id"`
	CampaignsCount int    `json:"campaigns_count"`
	IsSSL          bool   `json:"is_ssl"`
	SSLRedirect    bool   `json:"ssl_redirect"`
}

// SourceParameter describes one traffic source parameter.
type SourceParameter struct {
	Name        string `json:"name"`
	Placeholder string `json:"placeholder"`
	Alias       string `json:"alias"`
}

// Source is a traffic source.
type Source struct {
	Parameters       map[string]SourceParameter `json:"parameters"`
	Name             string                     `json:"name"`
	PostbackURL      string                     `json:"postback_url"`
	TemplateName     string                     `json:"template_name"`
	Notes            string                     `json:"notes"`
	State            string                     `json:"state"`
	PostbackStatuses []string                   `json:"postback_statuses"`
	ID               int64                      `json:"id"`
	TrafficLoss      int                        `json:"traffic_loss"`
	AcceptParameters bool                       `json:"accept_parameters"`
}

// Group is a campaign/offer group.
type Group struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ID       int64  `json:"id"`
	Position int    `json:"position"`
}

// FlowAction describes an action type supported by the installation
// (GET /streams_actions).
type FlowAction struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Field       string `json:"field"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Campaign is a campaign as returned by the tracker.
type Campaign struct {
	DomainID      *int64          `json:"domain_id"`
	Notes         *string         `json:"notes"`
	Domain        *string         `json:"domain"`
	Parameters    json.RawMessage `json:"parameters"`
	Postbacks     json.RawMessage `json:"postbacks"`
	Alias         string          `json:"alias"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	State         string          `json:"state"`
	CostType      string          `json:"cost_type"`
	CostCurrency  string          `json:"cost_currency"`
	BindVisitors  string          `json:"bind_visitors"`
	Token         string          `json:"token"`
	Group         string          `json:"group"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	ID            int64           `json:"id"`
	GroupID       int64           `json:"group_id"`
	TrafficSource int64           `json:"traffic_source_id"`
	CookiesTTL    int             `json:"cookies_ttl"`
	Position      int             `json:"position"`
	CostValue     float64         `json:"cost_value"`
	CostAuto      bool            `json:"cost_auto"`
}

// FlowOffer is one offer assignment nested in a flow.
// A missing share decodes as 0.
type FlowOffer struct {
	State     string `json:"state,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	ID        int64  `json:"id,omitempty"`
	StreamID  int64  `json:"stream_id,omitempty"`
	OfferID   int64  `json:"offer_id"`
	Share     int    `json:"share"`
}

// Flow is a flow (stream) record with its nested offer assignments.
type Flow struct {
	Comments       *string         `json:"comments"`
	ActionPayload  *string         `json:"action_payload"`
	Type           string          `json:"type"`
	Name           string          `json:"name"`
	State          string          `json:"state"`
	ActionType     string          `json:"action_type"`
	Schema         string          `json:"schema"`
	OfferSelection string          `json:"offer_selection"`
	ActionOptions  json.RawMessage `json:"action_options"`
	Filters        json.RawMessage `json:"filters"`
	Triggers       json.RawMessage `json:"triggers"`
	Landings       json.RawMessage `json:"landings"`
	Offers         []FlowOffer     `json:"offers"`
	ID             int64           `json:"id"`
	CampaignID     int64           `json:"campaign_id"`
	Position       int             `json:"position"`
	Weight         int             `json:"weight"`
	CollectClicks  bool            `json:"collect_clicks"`
	FilterOr       bool            `json:"filter_or"`
}

// HasOffers reports whether the flow carries at least one offer assignment.
func (f *Flow) HasOffers() bool {
	return len(f.Offers) > 0
}

// CampaignPayload is the body of POST /campaigns.
type CampaignPayload struct {
	Alias           string  `json:"alias"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	State           string  `json:"state"`
	CostType        string  `json:"cost_type"`
	Notes           string  `json:"notes,omitempty"`
	GroupID         int64   `json:"group_id,omitempty"`
	DomainID        int64   `json:"domain_id"`
	TrafficSourceID int64   `json:"traffic_source_id"`
	CookiesTTL      int     `json:"cookies_ttl"`
	CostValue       float64 `json:"cost_value"`
	CostAuto        bool    `json:"cost_auto"`
}

// FlowFilter is one targeting filter of a flow payload.
type FlowFilter struct {
	Name    string   `json:"name"`
	Mode    string   `json:"mode"`
	Payload []string `json:"payload"`
}

// PayloadOffer is an offer entry sent upstream in a flow payload.
type PayloadOffer struct {
	State   string `json:"state"`
	OfferID int64  `json:"offer_id"`
	Share   int    `json:"share"`
}

// OfferStateActive is the upstream state sent for every pushed offer.
const OfferStateActive = "active"

// FlowPayload is the body of POST /streams used for new flows.
type FlowPayload struct {
	ActionOptions map[string]any `json:"action_options,omitempty"`
	Schema        string         `json:"schema"`
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	ActionType    string         `json:"action_type"`
	Comments      string         `json:"comments,omitempty"`
	State         string         `json:"state"`
	Filters       []FlowFilter   `json:"filters,omitempty"`
	Offers        []PayloadOffer `json:"offers,omitempty"`
	CampaignID    int64          `json:"campaign_id"`
	CollectClicks bool           `json:"collect_clicks"`
	FilterOr      bool           `json:"filter_or"`
}

// FlowUpdatePayload is the full body of PUT /streams/{id}: every mirrored
// field of the local flow plus the offers eligible for publishing.
type FlowUpdatePayload struct {
	Comments       *string         `json:"comments"`
	ActionPayload  *string         `json:"action_payload"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	State          string          `json:"state"`
	ActionType     string          `json:"action_type"`
	Schema         string          `json:"schema"`
	OfferSelection string          `json:"offer_selection"`
	ActionOptions  json.RawMessage `json:"action_options"`
	Filters        json.RawMessage `json:"filters"`
	Triggers       json.RawMessage `json:"triggers"`
	Landings       json.RawMessage `json:"landings"`
	Offers         []PayloadOffer  `json:"offers"`
	ID             int64           `json:"id"`
	CampaignID     int64           `json:"campaign_id"`
	Position       int             `json:"position"`
	Weight         int             `json:"weight"`
	CollectClicks  bool            `json:"collect_clicks"`
	FilterOr       bool            `json:"filter_or"`
}
