package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/service"
	"github.com/iudanet/keitarosync/pkg/api"
)

// FlowHandler serves flow push and offer assignment endpoints.
type FlowHandler struct {
	logger *slog.Logger
	svc    Service
}

// NewFlowHandler creates a FlowHandler.
func NewFlowHandler(logger *slog.Logger, svc Service) *FlowHandler {
	return &FlowHandler{logger: logger, svc: svc}
}

type flowResponse struct {
	Flow *keitaro.Flow `json:"flow"`
}

// Push обрабатывает PUT /flows/{id}
// Отправляет поток в трекер и фиксирует локальные переходы состояний
func (h *FlowHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.PushFlow(ctx, id)
	if err != nil {
		sendServiceError(ctx, h.logger, w, err)
		return
	}
	sendJSON(h.logger, w, flowResponse{Flow: result.Flow}, http.StatusOK)
}

// UpsertOffer обрабатывает POST /flows/{id}/offer
func (h *FlowHandler) UpsertOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var req api.AssignmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.svc.UpsertAssignment(ctx, id, service.AssignmentInput{
		State:    models.AssignmentState(req.State),
		OfferID:  req.OfferID,
		Share:    req.Share,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		sendServiceError(ctx, h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, api.AssignmentResponse{
		FlowID:   saved.FlowExternalID,
		OfferID:  saved.OfferExternalID,
		Share:    saved.Share,
		State:    saved.State.String(),
		IsPinned: saved.IsPinned,
	}, http.StatusOK)
}

// OfferFlows обрабатывает GET /flows/{id}/offer_flows
func (h *FlowHandler) OfferFlows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	assignments, err := h.svc.ListAssignments(ctx, id)
	if err != nil {
		sendServiceError(ctx, h.logger, w, err)
		return
	}

	resp := api.OfferFlowsResponse{OfferFlows: make([]api.OfferFlow, 0, len(assignments))}
	for _, a := range assignments {
		resp.OfferFlows = append(resp.OfferFlows, api.OfferFlow{
			Offer:    a.OfferExternalID,
			Flow:     a.FlowExternalID,
			Share:    a.Share,
			State:    a.State.String(),
			IsPinned: a.IsPinned,
		})
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
