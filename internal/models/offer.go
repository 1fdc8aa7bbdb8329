package models

import "fmt"

// Offer is a local mirror of an upstream offer.
type Offer struct {
	Name       string `json:"name"`
	ID         int64  `json:"id"`
	ExternalID int64  `json:"external_id"`
}

// PlaceholderOfferName is the name given to offers created lazily from an
// assignment, before the offer list is refreshed from upstream.
func PlaceholderOfferName(externalID int64) string {
	return fmt.Sprintf("offer #%d", externalID)
}

// HasPlaceholderName reports whether the offer still carries the lazy name.
func (o *Offer) HasPlaceholderName() bool {
	return o.Name == PlaceholderOfferName(o.ExternalID)
}
