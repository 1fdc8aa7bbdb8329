package api

// FlowOffer is one offer attached to an upstream flow.
type FlowOffer struct {
	State   string `json:"state,omitempty"`
	OfferID int64  `json:"offer_id"`
	Share   int    `json:"share"`
}

// Flow is the subset of an upstream flow the operator tools display.
// Servers send the full upstream record; unknown fields are ignored.
type Flow struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	State      string      `json:"state"`
	Schema     string      `json:"schema"`
	Offers     []FlowOffer `json:"offers"`
	ID         int64       `json:"id"`
	CampaignID int64       `json:"campaign_id"`
	Position   int         `json:"position"`
	Weight     int         `json:"weight"`
}

// FlowsResponse is returned by GET /campaigns/{id}/flows.
type FlowsResponse struct {
	Flows []Flow `json:"flows"`
}

// FlowResponse is returned by PUT /flows/{id}.
type FlowResponse struct {
	Flow Flow `json:"flow"`
}

// AssignmentRequest is the body of POST /flows/{id}/offer.
// Missing fields take their defaults: share 0, state pending_add, not pinned.
type AssignmentRequest struct {
	State    string `json:"state,omitempty"`
	OfferID  int64  `json:"offer_id"`
	Share    int    `json:"share"`
	IsPinned bool   `json:"is_pinned"`
}

// AssignmentResponse is returned by POST /flows/{id}/offer.
type AssignmentResponse struct {
	State    string `json:"state"`
	FlowID   int64  `json:"flow_id"`
	OfferID  int64  `json:"offer_id"`
	Share    int    `json:"share"`
	IsPinned bool   `json:"is_pinned"`
}

// OfferFlow is one assignment listed by GET /flows/{id}/offer_flows.
// Offer and Flow are upstream ids.
type OfferFlow struct {
	State    string `json:"state"`
	Offer    int64  `json:"offer"`
	Flow     int64  `json:"flow"`
	Share    int    `json:"share"`
	IsPinned bool   `json:"is_pinned"`
}

// OfferFlowsResponse is returned by GET /flows/{id}/offer_flows.
type OfferFlowsResponse struct {
	OfferFlows []OfferFlow `json:"offer_flows"`
}
