package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

const flowColumns = `
	id, external_id, campaign_id, name, type, position,
	action_options, comments, state, action_type, action_payload,
	flow_schema, collect_clicks, filter_or, weight, offer_selection,
	filters, triggers, landings, created_at
`

// ExistingFlowIDs returns the subset of externalIDs stored locally
func (s *Storage) ExistingFlowIDs(ctx context.Context, externalIDs []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{}, len(externalIDs))
	if len(externalIDs) == 0 {
		return existing, nil
	}

	query := fmt.Sprintf(`SELECT external_id FROM flows WHERE external_id IN (%s)`,
		placeholders(1, len(externalIDs)))

	rows, err := s.q.QueryContext(ctx, query, int64Args(externalIDs)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flow ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan flow id: %w", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flow ids: %w", err)
	}
	return existing, nil
}

// InsertFlows inserts flows, skipping external ids that already exist
func (s *Storage) InsertFlows(ctx context.Context, flows []models.Flow) (int, error) {
	if len(flows) == 0 {
		return 0, nil
	}

	stmt, err := s.q.PrepareContext(ctx, `
		INSERT INTO flows (
			external_id, campaign_id, name, type, position,
			action_options, comments, state, action_type, action_payload,
			flow_schema, collect_clicks, filter_or, weight, offer_selection,
			filters, triggers, landings, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (external_id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare flow insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	createdAt := s.now().Unix()
	inserted := 0
	for i := range flows {
		f := &flows[i]
		res, err := stmt.ExecContext(ctx,
			f.ExternalID,
			f.CampaignID,
			f.Name,
			f.Type,
			f.Position,
			rawToNull(f.ActionOptions),
			f.Comments,
			f.State,
			f.ActionType,
			f.ActionPayload,
			f.Schema,
			boolToInt(f.CollectClicks),
			boolToInt(f.FilterOr),
			f.Weight,
			f.OfferSelection,
			rawToNull(f.Filters),
			rawToNull(f.Triggers),
			rawToNull(f.Landings),
			createdAt,
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert flow %d: %w", f.ExternalID, err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

// GetFlowByExternalID returns storage.ErrFlowNotFound if the flow is not stored
func (s *Storage) GetFlowByExternalID(ctx context.Context, externalID int64) (*models.Flow, error) {
	query := `SELECT ` + flowColumns + ` FROM flows WHERE external_id = $1`

	flow, err := scanFlow(s.q.QueryRowContext(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFlowNotFound
		}
		return nil, fmt.Errorf("failed to get flow: %w", err)
	}
	return flow, nil
}

func scanFlow(row *sql.Row) (*models.Flow, error) {
	var (
		f                       models.Flow
		actionOptions, filters  sql.NullString
		triggers, landings      sql.NullString
		comments, actionPayload sql.NullString
		collectClicks, filterOr int
		createdAt               int64
	)

	err := row.Scan(
		&f.ID,
		&f.ExternalID,
		&f.CampaignID,
		&f.Name,
		&f.Type,
		&f.Position,
		&actionOptions,
		&comments,
		&f.State,
		&f.ActionType,
		&actionPayload,
		&f.Schema,
		&collectClicks,
		&filterOr,
		&f.Weight,
		&f.OfferSelection,
		&filters,
		&triggers,
		&landings,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	f.ActionOptions = nullToRaw(actionOptions)
	f.Filters = nullToRaw(filters)
	f.Triggers = nullToRaw(triggers)
	f.Landings = nullToRaw(landings)
	f.Comments = nullToPtr(comments)
	f.ActionPayload = nullToPtr(actionPayload)
	f.CollectClicks = intToBool(collectClicks)
	f.FilterOr = intToBool(filterOr)
	f.CreatedAt = unixToTime(createdAt)

	return &f, nil
}

// rawToNull stores absent JSON as NULL
func rawToNull(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func nullToRaw(ns sql.NullString) json.RawMessage {
	if !ns.Valid {
		return nil
	}
	return json.RawMessage(ns.String)
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
