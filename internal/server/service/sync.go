package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/server/reconcile"
	"github.com/iudanet/keitarosync/internal/server/storage"
)

// SyncResult summarizes one campaign sync.
type SyncResult struct {
	// Flows are the upstream flows with at least one offer.
	Flows         []keitaro.Flow
	Assignments   reconcile.AssignmentResult
	FlowsInserted int
	FlowsSkipped  int
	NoResult      bool
}

// SyncCampaign mirrors new flows of the campaign and reconciles the offer
// assignments of every managed flow, one transaction per flow.
func (s *Service) SyncCampaign(ctx context.Context, campaignID int64) (*SyncResult, error) {
	flows, err := s.flows.Reconcile(ctx, s.store, campaignID)
	if err != nil {
		return nil, fmt.Errorf("reconcile flows: %w", err)
	}

	result := &SyncResult{
		Flows:         flows.Flows,
		FlowsInserted: flows.Inserted,
		FlowsSkipped:  flows.Skipped,
		NoResult:      flows.NoResult,
	}

	for _, remote := range flows.Flows {
		err := s.store.WithTx(ctx, func(tx storage.Store) error {
			flow, err := tx.GetFlowByExternalID(ctx, remote.ID)
			if err != nil {
				return err
			}
			res, err := s.assignments.Reconcile(ctx, tx, flow, remote)
			if err != nil {
				return err
			}
			addAssignmentResult(&result.Assignments, res)
			return nil
		})
		if errors.Is(err, storage.ErrFlowNotFound) {
			// поток не найден локально, синхронизацию офферов пропускаем
			s.logger.WarnContext(ctx, "flow missing after insert", slog.Int64("flow_id", remote.ID))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reconcile assignments of flow %d: %w", remote.ID, err)
		}
	}

	s.logger.InfoContext(ctx, "campaign synced",
		slog.Int64("campaign_id", campaignID),
		slog.Int("flows", len(result.Flows)),
		slog.Int("flows_inserted", result.FlowsInserted),
		slog.Int("assignments_added", result.Assignments.Added),
		slog.Int("assignments_updated", result.Assignments.Updated),
		slog.Int("assignments_removed", result.Assignments.Removed),
		slog.Int("assignments_restored", result.Assignments.Restored))

	return result, nil
}

func addAssignmentResult(total *reconcile.AssignmentResult, r reconcile.AssignmentResult) {
	total.Added += r.Added
	total.Updated += r.Updated
	total.Removed += r.Removed
	total.Restored += r.Restored
	total.Unchanged += r.Unchanged
}
