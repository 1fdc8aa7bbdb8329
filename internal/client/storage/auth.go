// Package storage описывает локальное хранилище сессий операторского CLI.
package storage

import (
	"context"
	"time"
)

// AuthStorage хранит сессии оператора, по одной на адрес сервера
type AuthStorage interface {
	// SaveAuth сохраняет сессию, перезаписывая прежнюю для того же сервера
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сессию для сервера.
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context, serverURL string) (*AuthData, error)

	// DeleteAuth удаляет сессию (logout)
	DeleteAuth(ctx context.Context, serverURL string) error

	// IsAuthenticated проверяет, что сессия существует и токен не истек
	IsAuthenticated(ctx context.Context, serverURL string) (bool, error)
}

// AuthData сессия оператора на конкретном сервере
type AuthData struct {
	ServerURL   string `json:"server_url"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds
}

// Expired сообщает, истек ли токен к моменту now
func (a *AuthData) Expired(now time.Time) bool {
	return !now.Before(time.Unix(a.ExpiresAt, 0))
}
