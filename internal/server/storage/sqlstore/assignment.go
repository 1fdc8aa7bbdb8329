package sqlstore

import (
	"context"
	"fmt"

	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

// ListAssignments returns the assignments of a flow, optionally filtered by state
func (s *Storage) ListAssignments(ctx context.Context, flowID int64, states ...models.AssignmentState) ([]models.OfferAssignment, error) {
	query := `
		SELECT a.id, a.flow_id, f.external_id, a.offer_id, o.external_id,
		       a.share, a.state, a.is_pinned, a.created_at, a.updated_at
		FROM offer_assignments a
		JOIN flows f ON f.id = a.flow_id
		JOIN offers o ON o.id = a.offer_id
		WHERE a.flow_id = $1
	`
	args := []any{flowID}
	if len(states) > 0 {
		query += fmt.Sprintf(" AND a.state IN (%s)", placeholders(2, len(states)))
		for _, st := range states {
			args = append(args, string(st))
		}
	}
	query += " ORDER BY o.external_id"

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	assignments := make([]models.OfferAssignment, 0)
	for rows.Next() {
		var (
			a                    models.OfferAssignment
			state                string
			isPinned             int
			createdAt, updatedAt int64
		)
		err := rows.Scan(
			&a.ID,
			&a.FlowID,
			&a.FlowExternalID,
			&a.OfferID,
			&a.OfferExternalID,
			&a.Share,
			&state,
			&isPinned,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.State = models.AssignmentState(state)
		a.IsPinned = intToBool(isPinned)
		a.CreatedAt = unixToTime(createdAt)
		a.UpdatedAt = unixToTime(updatedAt)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// InsertAssignments inserts assignments, ignoring existing (flow, offer) pairs
func (s *Storage) InsertAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	stmt, err := s.q.PrepareContext(ctx, `
		INSERT INTO offer_assignments (flow_id, offer_id, share, state, is_pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (flow_id, offer_id) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare assignment insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := s.now().Unix()
	inserted := 0
	for _, a := range assignments {
		if !a.State.Valid() {
			return inserted, fmt.Errorf("%w: %q", storage.ErrInvalidState, a.State)
		}
		res, err := stmt.ExecContext(ctx, a.FlowID, a.OfferID, a.Share, string(a.State), boolToInt(a.IsPinned), now, now)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert assignment: %w", err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

// UpdateAssignments writes share and state of assignments matched by (flow, offer)
func (s *Storage) UpdateAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	stmt, err := s.q.PrepareContext(ctx, `
		UPDATE offer_assignments
		SET share = $1, state = $2, updated_at = $3
		WHERE flow_id = $4 AND offer_id = $5
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare assignment update: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := s.now().Unix()
	updated := 0
	for _, a := range assignments {
		if !a.State.Valid() {
			return updated, fmt.Errorf("%w: %q", storage.ErrInvalidState, a.State)
		}
		res, err := stmt.ExecContext(ctx, a.Share, string(a.State), now, a.FlowID, a.OfferID)
		if err != nil {
			return updated, fmt.Errorf("failed to update assignment: %w", err)
		}
		n, err := rowsAffected(res)
		if err != nil {
			return updated, err
		}
		updated += n
	}
	return updated, nil
}

// MarkAssignmentsDeleted moves published assignments for offerIDs to deleted with share 0
func (s *Storage) MarkAssignmentsDeleted(ctx context.Context, flowID int64, offerIDs []int64) (int, error) {
	if len(offerIDs) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		UPDATE offer_assignments
		SET state = $1, share = 0, updated_at = $2
		WHERE flow_id = $3 AND state = $4 AND offer_id IN (%s)
	`, placeholders(5, len(offerIDs)))

	args := append([]any{
		string(models.StateDeleted),
		s.now().Unix(),
		flowID,
		string(models.StatePublished),
	}, int64Args(offerIDs)...)

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark assignments deleted: %w", err)
	}
	return rowsAffected(res)
}

// TransitionAssignments moves every assignment of the flow in state from to state to
func (s *Storage) TransitionAssignments(ctx context.Context, flowID int64, from, to models.AssignmentState) (int, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("%w: %q -> %q", storage.ErrInvalidState, from, to)
	}

	query := `
		UPDATE offer_assignments
		SET state = $1, updated_at = $2
		WHERE flow_id = $3 AND state = $4
	`
	res, err := s.q.ExecContext(ctx, query, string(to), s.now().Unix(), flowID, string(from))
	if err != nil {
		return 0, fmt.Errorf("failed to transition assignments: %w", err)
	}
	return rowsAffected(res)
}

// UpsertAssignment creates the assignment or overwrites share, state and pinned flag
func (s *Storage) UpsertAssignment(ctx context.Context, assignment *models.OfferAssignment) (*models.OfferAssignment, error) {
	if !assignment.State.Valid() {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidState, assignment.State)
	}

	query := `
		INSERT INTO offer_assignments (flow_id, offer_id, share, state, is_pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (flow_id, offer_id) DO UPDATE SET
			share = excluded.share,
			state = excluded.state,
			is_pinned = excluded.is_pinned,
			updated_at = excluded.updated_at
		RETURNING id, created_at, updated_at
	`

	now := s.now().Unix()
	result := *assignment
	var createdAt, updatedAt int64

	err := s.q.QueryRowContext(ctx, query,
		assignment.FlowID,
		assignment.OfferID,
		assignment.Share,
		string(assignment.State),
		boolToInt(assignment.IsPinned),
		now,
		now,
	).Scan(&result.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert assignment: %w", err)
	}

	result.CreatedAt = unixToTime(createdAt)
	result.UpdatedAt = unixToTime(updatedAt)
	return &result, nil
}
