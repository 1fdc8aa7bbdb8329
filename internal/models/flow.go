package models

import (
	"encoding/json"
	"time"
)

// Flow is a local, write-once mirror of an upstream flow (stream).
// Fields mirrored from upstream are stored verbatim; only the assignments
// of a flow are kept current after creation.
type Flow struct {
	CreatedAt      time.Time       `json:"created_at"`
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
	ID             int64           `json:"id"`
	ExternalID     int64           `json:"external_id"`
	CampaignID     int64           `json:"campaign_id"`
	Position       int             `json:"position"`
	Weight         int             `json:"weight"`
	CollectClicks  bool            `json:"collect_clicks"`
	FilterOr       bool            `json:"filter_or"`
}
