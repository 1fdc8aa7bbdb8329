package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/keitarosync/internal/server/service"
	"github.com/iudanet/keitarosync/internal/validation"
	"github.com/iudanet/keitarosync/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

// sendServiceError maps a service error onto a status code. Unknown errors
// are logged and answered with a generic 500.
func sendServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.Is(err, service.ErrFlowNotFound):
		sendError(logger, w, "flow not found", http.StatusNotFound)
	case errors.Is(err, service.ErrCampaignNotFound):
		sendError(logger, w, "campaign not found", http.StatusNotFound)
	case errors.As(err, &verr):
		resp := api.ErrorResponse{Error: "invalid payload", Fields: make([]api.FieldError, 0, len(verr.Fields))}
		for _, f := range verr.Fields {
			resp.Fields = append(resp.Fields, api.FieldError{Field: f.Field, Rule: f.Rule, Param: f.Param})
		}
		sendJSON(logger, w, resp, http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrMissingReference):
		sendError(logger, w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUpstreamNoResult):
		logger.WarnContext(ctx, "upstream returned no result", slog.Any("error", err))
		sendError(logger, w, "upstream returned no result", http.StatusBadGateway)
	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		sendError(logger, w, "internal server error", http.StatusInternalServerError)
	}
}

// decodeJSON декодирует тело запроса в dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pathID извлекает положительный числовой идентификатор из пути
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
