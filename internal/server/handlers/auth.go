package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/keitarosync/internal/crypto"
	"github.com/iudanet/keitarosync/internal/validation"
	"github.com/iudanet/keitarosync/pkg/api"
)

// AuthHandler обрабатывает вход операторов
type AuthHandler struct {
	logger    *slog.Logger
	operators map[string]string
	jwtConfig JWTConfig
}

// NewAuthHandler создает handler авторизации. operators maps an operator
// name to its argon2id password hash.
func NewAuthHandler(logger *slog.Logger, operators map[string]string, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		operators: operators,
		jwtConfig: jwtConfig,
	}
}

// Login обрабатывает POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateOperatorName(req.Username); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		sendError(h.logger, w, "password is required", http.StatusBadRequest)
		return
	}

	hash, ok := h.operators[req.Username]
	if !ok {
		h.logger.WarnContext(ctx, "login failed: unknown operator", slog.String("username", req.Username))
		sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := crypto.VerifyPassword(req.Password, hash); err != nil {
		if !errors.Is(err, crypto.ErrMismatchedPassword) {
			h.logger.ErrorContext(ctx, "operator password hash is unusable",
				slog.String("username", req.Username), slog.Any("error", err))
		} else {
			h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		}
		sendError(h.logger, w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, req.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "operator logged in", slog.String("username", req.Username))

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
