package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/keitarosync/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена оператора
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header", "path", r.URL.Path)
				writeError(w, "unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				writeError(w, "unauthorized: invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", "error", err)
				writeError(w, "unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "operator authenticated", "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(handlers.WithUsername(ctx, claims.Username)))
		})
	}
}
