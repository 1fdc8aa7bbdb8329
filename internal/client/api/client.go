// Package api содержит HTTP клиент операторского CLI к серверу синхронизации.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/keitarosync/pkg/api"
)

// DefaultTimeout таймаут HTTP запросов по умолчанию
const DefaultTimeout = 30 * time.Second

// ErrUnauthorized возвращается, когда сервер отклонил токен или учетные данные
var ErrUnauthorized = errors.New("unauthorized")

// Error ошибка, возвращенная сервером
type Error struct {
	Message    string
	Fields     []api.FieldError
	StatusCode int
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Rule)
	}
	return fmt.Sprintf("server error (%d): %s (%s)", e.StatusCode, e.Message, strings.Join(parts, ", "))
}

// Unwrap позволяет проверять 401 через errors.Is(err, ErrUnauthorized)
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			// Копируем заголовок Authorization при редиректе
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("stopped after 10 redirects")
				}
				if auth := via[0].Header.Get("Authorization"); auth != "" {
					req.Header.Set("Authorization", auth)
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает access token для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login выполняет аутентификацию оператора
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListCampaigns возвращает кампании трекера
func (c *Client) ListCampaigns(ctx context.Context) (*api.CampaignsResponse, error) {
	var resp api.CampaignsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/campaigns", nil, &resp); err != nil {
		return nil, fmt.Errorf("list campaigns request failed: %w", err)
	}
	return &resp, nil
}

// SyncCampaign запускает сверку кампании и возвращает ее потоки с офферами
func (c *Client) SyncCampaign(ctx context.Context, campaignID int64) (*api.FlowsResponse, error) {
	var resp api.FlowsResponse
	path := fmt.Sprintf("/campaigns/%d/flows", campaignID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("sync campaign %d failed: %w", campaignID, err)
	}
	return &resp, nil
}

// ListAssignments возвращает назначения офферов потока
func (c *Client) ListAssignments(ctx context.Context, flowID int64) (*api.OfferFlowsResponse, error) {
	var resp api.OfferFlowsResponse
	path := fmt.Sprintf("/flows/%d/offer_flows", flowID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list assignments of flow %d failed: %w", flowID, err)
	}
	return &resp, nil
}

// UpsertAssignment создает или обновляет назначение оффера потоку
func (c *Client) UpsertAssignment(ctx context.Context, flowID int64, req api.AssignmentRequest) (*api.AssignmentResponse, error) {
	var resp api.AssignmentResponse
	path := fmt.Sprintf("/flows/%d/offer", flowID)
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("assign offer %d to flow %d failed: %w", req.OfferID, flowID, err)
	}
	return &resp, nil
}

// PushFlow отправляет локальные назначения потока в трекер
func (c *Client) PushFlow(ctx context.Context, flowID int64) (*api.FlowResponse, error) {
	var resp api.FlowResponse
	path := fmt.Sprintf("/flows/%d", flowID)
	if err := c.doRequest(ctx, http.MethodPut, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("push flow %d failed: %w", flowID, err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Fields = errResp.Fields
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
