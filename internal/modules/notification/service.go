package notification

import (
	"context"
	"fmt"
	"log"

	"creatortrust/internal/domain"
)

// Service persists notifications and pushes them to live websocket
// connections. Delivery is best effort: a failed insert or push is logged
// and never propagated to the caller's flow.
type Service struct {
	notifications NotificationRepositoryInterface
	hub           *Hub
}

func NewService(notifications NotificationRepositoryInterface, hub *Hub) *Service {
	return &Service{notifications: notifications, hub: hub}
}

func (s *Service) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, limit)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.notifications.MarkRead(ctx, userID, id)
}

func (s *Service) CampaignApplied(ctx context.Context, brandUserID, campaignID int64, creatorName string) {
	s.deliver(ctx, &domain.Notification{
		UserID:     brandUserID,
		Type:       domain.NotifCampaignApplied,
		Message:    fmt.Sprintf("%s applied to your campaign", creatorName),
		CampaignID: &campaignID,
	})
}

func (s *Service) CampaignAssigned(ctx context.Context, creatorUserID, campaignID int64, title string) {
	s.deliver(ctx, &domain.Notification{
		UserID:     creatorUserID,
		Type:       domain.NotifCampaignAssigned,
		Message:    fmt.Sprintf("You were assigned to %q", title),
		CampaignID: &campaignID,
	})
}

func (s *Service) CampaignSubmitted(ctx context.Context, brandUserID, campaignID int64, title string) {
	s.deliver(ctx, &domain.Notification{
		UserID:     brandUserID,
		Type:       domain.NotifCampaignSubmitted,
		Message:    fmt.Sprintf("Content submitted for %q", title),
		CampaignID: &campaignID,
	})
}

func (s *Service) CampaignApproved(ctx context.Context, creatorUserID, campaignID int64, title string) {
	s.deliver(ctx, &domain.Notification{
		UserID:     creatorUserID,
		Type:       domain.NotifCampaignApproved,
		Message:    fmt.Sprintf("%q was approved and payment released", title),
		CampaignID: &campaignID,
	})
}

func (s *Service) deliver(ctx context.Context, n *domain.Notification) {
	if err := s.notifications.Create(ctx, n); err != nil {
		log.Printf("notification insert for user %d failed: %v", n.UserID, err)
		return
	}
	s.hub.SendToUser(n.UserID, n)
}
