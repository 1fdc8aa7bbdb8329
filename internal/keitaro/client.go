// Package keitaro is a typed client for the tracker admin API.
//
// Read calls never fail: a transport, status or decode error is logged and
// reported as a nil slice (no result), while a valid empty list comes back
// as an empty non-nil slice. Write calls return ErrNoResult instead.
package keitaro

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/keitarosync/internal/httpretry"
)

// ErrNoResult is returned when a write to the tracker produced no usable result.
var ErrNoResult = errors.New("keitaro: no result")

const apiKeyHeader = "Api-Key"

// Client talks to the tracker admin API.
type Client struct {
	httpClient httpretry.HTTPDoer
	logger     *slog.Logger
	baseURL    string
	apiKey     string
}

// NewClient creates a client for baseURL (for example
// "https://tracker.example/admin_api/v1/") authenticated with apiKey.
func NewClient(baseURL, apiKey string, httpClient httpretry.HTTPDoer, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// SetHTTPClient replaces the transport, used in tests.
func (c *Client) SetHTTPClient(httpClient httpretry.HTTPDoer) {
	c.httpClient = httpClient
}

// GetOffers returns all offers.
func (c *Client) GetOffers(ctx context.Context) []Offer {
	return getList[Offer](ctx, c, "offers")
}

// GetDomains returns all domains.
func (c *Client) GetDomains(ctx context.Context) []Domain {
	return getList[Domain](ctx, c, "domains")
}

// GetSources returns all traffic sources.
func (c *Client) GetSources(ctx context.Context) []Source {
	return getList[Source](ctx, c, "traffic_sources")
}

// GetGroups returns all groups.
func (c *Client) GetGroups(ctx context.Context) []Group {
	return getList[Group](ctx, c, "groups")
}

// GetFlowActions returns the action types supported by the installation.
func (c *Client) GetFlowActions(ctx context.Context) []FlowAction {
	return getList[FlowAction](ctx, c, "streams_actions")
}

// GetCampaigns returns all campaigns.
func (c *Client) GetCampaigns(ctx context.Context) []Campaign {
	return getList[Campaign](ctx, c, "campaigns")
}

// GetCampaign returns one campaign or nil.
func (c *Client) GetCampaign(ctx context.Context, campaignID int64) *Campaign {
	var campaign Campaign
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("campaigns/%d", campaignID), nil, &campaign); err != nil {
		c.logger.WarnContext(ctx, "keitaro read failed", slog.Any("error", err))
		return nil
	}
	return &campaign
}

// GetFlows returns the flows of a campaign with their offer assignments.
func (c *Client) GetFlows(ctx context.Context, campaignID int64) []Flow {
	return getList[Flow](ctx, c, fmt.Sprintf("campaigns/%d/streams", campaignID))
}

// CreateCampaign creates a campaign.
func (c *Client) CreateCampaign(ctx context.Context, payload CampaignPayload) (*Campaign, error) {
	var campaign Campaign
	if err := c.write(ctx, http.MethodPost, "campaigns", payload, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// CreateFlow creates a flow.
func (c *Client) CreateFlow(ctx context.Context, payload FlowPayload) (*Flow, error) {
	var flow Flow
	if err := c.write(ctx, http.MethodPost, "streams", payload, &flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// UpdateFlow replaces a flow, including its offer list.
func (c *Client) UpdateFlow(ctx context.Context, flowID int64, payload FlowUpdatePayload) (*Flow, error) {
	var flow Flow
	if err := c.write(ctx, http.MethodPut, fmt.Sprintf("streams/%d", flowID), payload, &flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

func getList[T any](ctx context.Context, c *Client, path string) []T {
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		c.logger.WarnContext(ctx, "keitaro read failed", slog.Any("error", err))
		return nil
	}
	// "null" is a valid but empty answer.
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Client) write(ctx context.Context, method, path string, body, result any) error {
	if err := c.do(ctx, method, path, body, result); err != nil {
		c.logger.WarnContext(ctx, "keitaro write failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrNoResult, err)
	}
	return nil
}

// do выполняет запрос к API трекера
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + strings.TrimPrefix(path, "/")

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", method, url, resp.StatusCode, truncate(respBody, 200))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%s %s: decode: %w", method, url, err)
		}
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
