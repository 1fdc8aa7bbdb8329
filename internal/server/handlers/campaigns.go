package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/server/service"
	"github.com/iudanet/keitarosync/pkg/api"
)

// CampaignHandler serves campaign endpoints.
type CampaignHandler struct {
	logger *slog.Logger
	svc    Service
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(logger *slog.Logger, svc Service) *CampaignHandler {
	return &CampaignHandler{logger: logger, svc: svc}
}

type campaignsResponse struct {
	Campaigns []keitaro.Campaign `json:"campaigns"`
}

type campaignResponse struct {
	Campaign *keitaro.Campaign `json:"campaign"`
}

type flowsResponse struct {
	Flows []keitaro.Flow `json:"flows"`
}

// List обрабатывает GET /campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, campaignsResponse{Campaigns: h.svc.ListCampaigns(r.Context())}, http.StatusOK)
}

// Get обрабатывает GET /campaigns/{id}
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	campaign, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		sendServiceError(r.Context(), h.logger, w, err)
		return
	}
	sendJSON(h.logger, w, campaignResponse{Campaign: campaign}, http.StatusOK)
}

// Create обрабатывает POST /campaigns
// Создает кампанию и два потока по умолчанию
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CampaignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.CreateCampaign(ctx, service.CampaignInput{
		Name:    req.Name,
		Country: req.Country,
		OfferID: req.OfferID,
	})
	if err != nil {
		sendServiceError(ctx, h.logger, w, err)
		return
	}
	sendJSON(h.logger, w, created, http.StatusCreated)
}

// Flows обрабатывает GET /campaigns/{id}/flows
// Синхронизирует потоки и офферы кампании и возвращает потоки с офферами
func (h *CampaignHandler) Flows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.SyncCampaign(ctx, id)
	if err != nil {
		sendServiceError(ctx, h.logger, w, err)
		return
	}

	flows := result.Flows
	if flows == nil {
		flows = []keitaro.Flow{}
	}
	sendJSON(h.logger, w, flowsResponse{Flows: flows}, http.StatusOK)
}
