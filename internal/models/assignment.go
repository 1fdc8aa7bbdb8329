package models

import "time"

// AssignmentState is the local lifecycle of an offer assignment.
// Upstream only knows "present" or "absent"; the pending states exist
// locally until the flow is pushed.
type AssignmentState string

const (
	StatePendingAdd    AssignmentState = "pending_add"
	StatePublished     AssignmentState = "published"
	StatePendingDelete AssignmentState = "pending_delete"
	StateDeleted       AssignmentState = "deleted"
)

// AssignmentStates lists every known state in lifecycle order.
var AssignmentStates = []AssignmentState{
	StatePendingAdd,
	StatePublished,
	StatePendingDelete,
	StateDeleted,
}

// Valid reports whether s is one of the known lifecycle states.
func (s AssignmentState) Valid() bool {
	switch s {
	case StatePendingAdd, StatePublished, StatePendingDelete, StateDeleted:
		return true
	}
	return false
}

// Pushable reports whether an assignment in this state goes into the
// payload sent upstream on flow update.
func (s AssignmentState) Pushable() bool {
	return s == StatePublished || s == StatePendingDelete
}

// Restorable reports whether an assignment in this state is brought back
// to published when its offer reappears upstream.
func (s AssignmentState) Restorable() bool {
	return s == StatePendingDelete || s == StateDeleted
}

// AfterPush returns the state an assignment moves to once the flow has
// been acknowledged upstream.
func (s AssignmentState) AfterPush() AssignmentState {
	switch s {
	case StatePendingAdd:
		return StatePublished
	case StatePendingDelete:
		return StateDeleted
	}
	return s
}

func (s AssignmentState) String() string {
	return string(s)
}

// OfferAssignment links a flow to an offer with a traffic share.
// (FlowID, OfferID) is unique.
type OfferAssignment struct {
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	State           AssignmentState `json:"state"`
	ID              int64           `json:"id"`
	FlowID          int64           `json:"flow_id"`
	FlowExternalID  int64           `json:"flow_external_id"`
	OfferID         int64           `json:"offer_id"`
	OfferExternalID int64           `json:"offer_external_id"`
	Share           int             `json:"share"`
	IsPinned        bool            `json:"is_pinned"`
}

// NeedsRefresh reports whether applying share and the published state
// would change the assignment.
func (a *OfferAssignment) NeedsRefresh(share int) bool {
	return a.Share != share || a.State != StatePublished
}

// Publish sets share and moves the assignment to published.
func (a *OfferAssignment) Publish(share int) {
	a.Share = share
	a.State = StatePublished
}
