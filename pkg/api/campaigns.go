package api

// Campaign is the subset of an upstream campaign the operator tools display.
type Campaign struct {
	Alias string `json:"alias"`
	Name  string `json:"name"`
	State string `json:"state"`
	Type  string `json:"type"`
	ID    int64  `json:"id"`
}

// CampaignsResponse is returned by GET /campaigns.
type CampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// CampaignRequest is the body of POST /campaigns.
type CampaignRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"` // ISO 3166-1 alpha-2
	OfferID int64  `json:"offer_id"`
}

// CampaignCreatedResponse is returned by POST /campaigns. FlowErrors names
// the default flows the tracker refused to create.
type CampaignCreatedResponse struct {
	Campaign   Campaign `json:"campaign"`
	Flows      []Flow   `json:"flows"`
	FlowErrors []string `json:"flow_errors"`
}

// Offer is one tracker offer.
type Offer struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// OffersResponse is returned by GET /offers.
type OffersResponse struct {
	Offers []Offer `json:"offers"`
}
