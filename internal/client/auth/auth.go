// Package auth управляет сессией оператора: логин на сервере и хранение токена.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/keitarosync/internal/client/storage"
	"github.com/iudanet/keitarosync/internal/validation"
	pkgapi "github.com/iudanet/keitarosync/pkg/api"
)

//go:generate moq -out mocks_test.go . LoginClient

// ErrNotAuthenticated возвращается, когда сессии нет или токен истек
var ErrNotAuthenticated = errors.New("not authenticated, run 'keitarosync login' first")

// LoginClient выполняет логин на сервере
type LoginClient interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

// Service предоставляет функции авторизации для одного сервера
type Service struct {
	apiClient LoginClient
	store     storage.AuthStorage
	now       func() time.Time
	serverURL string
}

// NewService создает новый сервис авторизации
func NewService(apiClient LoginClient, store storage.AuthStorage, serverURL string) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
		serverURL: serverURL,
		now:       time.Now,
	}
}

// Login аутентифицирует оператора и сохраняет сессию
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	if err := validation.ValidateOperatorName(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, errors.New("login failed: server returned empty token")
	}

	auth := &storage.AuthData{
		ServerURL:   s.serverURL,
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Unix() + resp.ExpiresIn,
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return auth, nil
}

// Logout удаляет локальную сессию. Отсутствие сессии ошибкой не считается
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteAuth(ctx, s.serverURL); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию, включая истекшую
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.store.GetAuth(ctx, s.serverURL)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return auth, nil
}

// Token возвращает действующий access token
func (s *Service) Token(ctx context.Context) (string, error) {
	auth, err := s.Session(ctx)
	if err != nil {
		return "", err
	}
	if auth.Expired(s.now()) {
		return "", ErrNotAuthenticated
	}
	return auth.AccessToken, nil
}
