package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/keitarosync/internal/keitaro"
)

// ReferenceHandler serves tracker reference data.
type ReferenceHandler struct {
	logger *slog.Logger
	svc    Service
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(logger *slog.Logger, svc Service) *ReferenceHandler {
	return &ReferenceHandler{logger: logger, svc: svc}
}

type offersResponse struct {
	Offers []keitaro.Offer `json:"offers"`
}

// Reference обрабатывает GET /reference
func (h *ReferenceHandler) Reference(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, h.svc.ReferenceData(r.Context()), http.StatusOK)
}

// Offers обрабатывает GET /offers
// Обновляет локальный список офферов из трекера
func (h *ReferenceHandler) Offers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.RefreshOffers(r.Context())
	if err != nil {
		sendServiceError(r.Context(), h.logger, w, err)
		return
	}
	sendJSON(h.logger, w, offersResponse{Offers: result.Offers}, http.StatusOK)
}
