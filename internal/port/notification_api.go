package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// NotificationAPI is the upstream REST surface for the viewer's inbox.
type NotificationAPI interface {
	List(ctx context.Context, token string, limit int) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, token string) (int, error)
	MarkRead(ctx context.Context, token string, notificationID uuid.UUID) error
}
