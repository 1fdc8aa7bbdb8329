package handlers

import (
	"context"

	"github.com/iudanet/keitarosync/internal/keitaro"
	"github.com/iudanet/keitarosync/internal/models"
	"github.com/iudanet/keitarosync/internal/server/service"
)

//go:generate moq -out mocks_test.go . Service Pinger

// Service is the application layer behind the HTTP handlers.
type Service interface {
	SyncCampaign(ctx context.Context, campaignID int64) (*service.SyncResult, error)
	PushFlow(ctx context.Context, flowID int64) (*service.PushResult, error)
	UpsertAssignment(ctx context.Context, flowID int64, in service.AssignmentInput) (*models.OfferAssignment, error)
	ListAssignments(ctx context.Context, flowID int64) ([]models.OfferAssignment, error)
	RefreshOffers(ctx context.Context) (*service.OfferRefreshResult, error)
	ReferenceData(ctx context.Context) service.ReferenceData
	ListCampaigns(ctx context.Context) []keitaro.Campaign
	GetCampaign(ctx context.Context, campaignID int64) (*keitaro.Campaign, error)
	CreateCampaign(ctx context.Context, in service.CampaignInput) (*service.CampaignCreated, error)
}
