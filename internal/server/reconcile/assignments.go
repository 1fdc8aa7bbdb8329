package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
)

// AssignmentStore is the part of the entity store used by AssignmentReconciler.
type AssignmentStore interface {
	ListAssignments(ctx context.Context, flowID int64, states ...models.AssignmentState) ([]models.OfferAssignment, error)
	GetOrCreateOffer(ctx context.Context, externalID int64, name string) (*models.Offer, error)
	InsertAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error)
	UpdateAssignments(ctx context.Context, assignments []models.OfferAssignment) (int, error)
	MarkAssignmentsDeleted(ctx context.Context, flowID int64, offerIDs []int64) (int, error)
}

// AssignmentResult counts the writes of one assignment reconciliation.
type AssignmentResult struct {
	Added     int
	Updated   int
	Removed   int
	Restored  int
	Unchanged int
}

// Writes returns the total number of rows written.
func (r AssignmentResult) Writes() int {
	return r.Added + r.Updated + r.Removed + r.Restored
}

// AssignmentReconciler syncs the offer assignments of one flow.
type AssignmentReconciler struct {
	logger *slog.Logger
}

// NewAssignmentReconciler creates an AssignmentReconciler.
func NewAssignmentReconciler(logger *slog.Logger) *AssignmentReconciler {
	return &AssignmentReconciler{logger: logger}
}

// Reconcile merges the offers of remote into the assignments of the local
// flow. Afterwards the published assignments match the remote offer set.
// Pinned flags are never touched; rows that already match are not written.
func (r *AssignmentReconciler) Reconcile(ctx context.Context, store AssignmentStore, flow *models.Flow, remote keitaro.Flow) (AssignmentResult, error) {
	var result AssignmentResult

	incoming := make(map[int64]int, len(remote.Offers))
	for _, o := range remote.Offers {
		incoming[o.OfferID] = o.Share
	}

	current, err := store.ListAssignments(ctx, flow.ID)
	if err != nil {
		return result, fmt.Errorf("failed to list assignments: %w", err)
	}
	existing := make(map[int64]models.OfferAssignment, len(current))
	for _, a := range current {
		existing[a.OfferExternalID] = a
	}

	// additions: incoming - existing
	var additions []models.OfferAssignment
	for _, offerID := range sortedKeys(incoming) {
		if _, ok := existing[offerID]; ok {
			continue
		}
		offer, err := store.GetOrCreateOffer(ctx, offerID, models.PlaceholderOfferName(offerID))
		if err != nil {
			return result, fmt.Errorf("failed to get offer %d: %w", offerID, err)
		}
		additions = append(additions, models.OfferAssignment{
			FlowID:          flow.ID,
			FlowExternalID:  flow.ExternalID,
			OfferID:         offer.ID,
			OfferExternalID: offerID,
			Share:           incoming[offerID],
			State:           models.StatePublished,
		})
	}
	if len(additions) > 0 {
		result.Added, err = store.InsertAssignments(ctx, additions)
		if err != nil {
			return result, fmt.Errorf("failed to insert assignments: %w", err)
		}
	}

	// updates: incoming ∩ existing, only rows that change
	var updates []models.OfferAssignment
	for _, offerID := range sortedKeys(incoming) {
		a, ok := existing[offerID]
		if !ok {
			continue
		}
		share := incoming[offerID]
		if !a.NeedsRefresh(share) {
			result.Unchanged++
			continue
		}
		a.Publish(share)
		updates = append(updates, a)
	}
	if len(updates) > 0 {
		result.Updated, err = store.UpdateAssignments(ctx, updates)
		if err != nil {
			return result, fmt.Errorf("failed to update assignments: %w", err)
		}
	}

	// removals: existing - incoming, published only
	var removals []int64
	for _, offerID := range sortedKeys(existing) {
		if _, ok := incoming[offerID]; ok {
			continue
		}
		if a := existing[offerID]; a.State == models.StatePublished {
			removals = append(removals, a.OfferID)
		}
	}
	if len(removals) > 0 {
		result.Removed, err = store.MarkAssignmentsDeleted(ctx, flow.ID, removals)
		if err != nil {
			return result, fmt.Errorf("failed to remove assignments: %w", err)
		}
	}

	// restorations run last on a fresh read
	restored, err := r.restore(ctx, store, flow, incoming)
	if err != nil {
		return result, err
	}
	result.Restored = restored

	if result.Writes() > 0 {
		r.logger.InfoContext(ctx, "assignments reconciled",
			slog.Int64("flow_id", flow.ExternalID),
			slog.Int("added", result.Added),
			slog.Int("updated", result.Updated),
			slog.Int("removed", result.Removed),
			slog.Int("restored", result.Restored))
	}

	return result, nil
}

func (r *AssignmentReconciler) restore(ctx context.Context, store AssignmentStore, flow *models.Flow, incoming map[int64]int) (int, error) {
	inactive, err := store.ListAssignments(ctx, flow.ID, models.StatePendingDelete, models.StateDeleted)
	if err != nil {
		return 0, fmt.Errorf("failed to list inactive assignments: %w", err)
	}

	var restorations []models.OfferAssignment
	for _, a := range inactive {
		share, ok := incoming[a.OfferExternalID]
		if !ok || !a.State.Restorable() || !a.NeedsRefresh(share) {
			continue
		}
		a.Publish(share)
		restorations = append(restorations, a)
	}
	if len(restorations) == 0 {
		return 0, nil
	}

	n, err := store.UpdateAssignments(ctx, restorations)
	if err != nil {
		return 0, fmt.Errorf("failed to restore assignments: %w", err)
	}
	return n, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
