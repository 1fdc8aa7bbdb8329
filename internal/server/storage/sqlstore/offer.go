package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

// GetOrCreateOffer returns the offer with externalID, inserting it with name if missing
func (s *Storage) GetOrCreateOffer(ctx context.Context, externalID int64, name string) (*models.Offer, error) {
	query := `
		INSERT INTO offers (external_id, name)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO NOTHING
	`
	if _, err := s.q.ExecContext(ctx, query, externalID, name); err != nil {
		return nil, fmt.Errorf("failed to insert offer: %w", err)
	}

	return s.getOfferByExternalID(ctx, externalID)
}

func (s *Storage) getOfferByExternalID(ctx context.Context, externalID int64) (*models.Offer, error) {
	query := `SELECT id, external_id, name FROM offers WHERE external_id = $1`

	offer := &models.Offer{}
	err := s.q.QueryRowContext(ctx, query, externalID).Scan(&offer.ID, &offer.ExternalID, &offer.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

// InsertOffers inserts offers, ignoring external ids that already exist
func (s *Storage) InsertOffers(ctx context.Context, offers []models.Offer) (int, error) {
	if len(offers) == 0 {
		return 0, nil
	}

	stmt, err := s.q.PrepareContext(ctx, `
		INSERT INTO offers (external_id, name)
		VALUES ($1, $2)
		ON CONFLICT (external_id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare offer insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	inserted := 0
	for _, offer := range offers {
		res, err := stmt.ExecContext(ctx, offer.ExternalID, offer.Name)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert offer %d: %w", offer.ExternalID, err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

// RenameOffers updates offer names matched by external id
func (s *Storage) RenameOffers(ctx context.Context, offers []models.Offer) (int, error) {
	if len(offers) == 0 {
		return 0, nil
	}

	stmt, err := s.q.PrepareContext(ctx, `UPDATE offers SET name = $1 WHERE external_id = $2`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare offer rename: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	updated := 0
	for _, offer := range offers {
		res, err := stmt.ExecContext(ctx, offer.Name, offer.ExternalID)
		if err != nil {
			return updated, fmt.Errorf("failed to rename offer %d: %w", offer.ExternalID, err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return updated, err
		}
		updated += n
	}
	return updated, nil
}

// ListOffers returns all offers ordered by external id
func (s *Storage) ListOffers(ctx context.Context) ([]models.Offer, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT id, external_id, name FROM offers ORDER BY external_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	offers := make([]models.Offer, 0)
	for rows.Next() {
		var offer models.Offer
		if err := rows.Scan(&offer.ID, &offer.ExternalID, &offer.Name); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}
	return offers, nil
}
