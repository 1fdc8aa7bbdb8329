// Package cli реализует команды операторского CLI keitarosync.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iudanet/keitarosync/internal/client/auth"
	"github.com/iudanet/keitarosync/internal/client/iocli"
	pkgapi "github.com/iudanet/keitarosync/pkg/api"
)

// PasswordEnv переменная окружения с паролем оператора
const PasswordEnv = "KEITAROSYNC_PASSWORD"

// API методы сервера, которые вызывают команды
type API interface {
	SetToken(token string)
	ListCampaigns(ctx context.Context) (*pkgapi.CampaignsResponse, error)
	SyncCampaign(ctx context.Context, campaignID int64) (*pkgapi.FlowsResponse, error)
	ListAssignments(ctx context.Context, flowID int64) (*pkgapi.OfferFlowsResponse, error)
	UpsertAssignment(ctx context.Context, flowID int64, req pkgapi.AssignmentRequest) (*pkgapi.AssignmentResponse, error)
	PushFlow(ctx context.Context, flowID int64) (*pkgapi.FlowResponse, error)
}

// Passwords источники пароля помимо переменной окружения и интерактивного ввода
type Passwords struct {
	FromFile string
}

type Cli struct {
	io          iocli.IO
	apiClient   API
	authService *auth.Service
	serverURL   string
}

func New(io iocli.IO, apiClient API, authService *auth.Service, serverURL string) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		serverURL:   serverURL,
	}
}

// authorize подставляет сохраненный токен в API клиент
func (c *Cli) authorize(ctx context.Context) error {
	token, err := c.authService.Token(ctx)
	if err != nil {
		return err
	}
	c.apiClient.SetToken(token)
	return nil
}

// getPassword retrieves the operator password with priority:
// 1. Environment variable KEITAROSYNC_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", errors.New("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

// parseID разбирает положительный идентификатор из аргумента команды
func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", kind, raw)
	}
	return id, nil
}
