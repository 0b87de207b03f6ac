package notification

import (
	"context"

	"creatortrust/internal/domain"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
}
