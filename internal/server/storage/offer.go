package storage

import (
	"context"

	"github.com/iudanet/keitarosync/internal/models"
)

// OfferStorage defines persistence for offers
type OfferStorage interface {
	// GetOrCreateOffer returns the offer with externalID, creating it with
	// name when missing. A concurrent insert of the same offer is absorbed.
	GetOrCreateOffer(ctx context.Context, externalID int64, name string) (*models.Offer, error)

	// InsertOffers inserts offers, ignoring ones that already exist.
	// Returns the number of rows actually inserted.
	InsertOffers(ctx context.Context, offers []models.Offer) (int, error)

	// RenameOffers sets the name of each offer, matched by external id.
	// Returns the number of rows updated.
	RenameOffers(ctx context.Context, offers []models.Offer) (int, error)

	// ListOffers returns all offers ordered by external id
	ListOffers(ctx context.Context) ([]models.Offer, error)
}
