package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// NotificationClient implements port.NotificationAPI.
type NotificationClient struct {
	*Client
}

// NewNotificationClient creates a NotificationClient sharing the base client.
func NewNotificationClient(c *Client) *NotificationClient {
	return &NotificationClient{Client: c}
}

func (c *NotificationClient) List(ctx context.Context, token string, limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	path := fmt.Sprintf("/notifications?limit=%d", limit)
	if err := c.do(ctx, token, http.MethodGet, path, "notifications.list", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *NotificationClient) UnreadCount(ctx context.Context, token string) (int, error) {
	var out struct {
		Unread int `json:"unread"`
	}
	if err := c.do(ctx, token, http.MethodGet, "/notifications/count", "notifications.count", nil, &out); err != nil {
		return 0, err
	}
	return out.Unread, nil
}

func (c *NotificationClient) MarkRead(ctx context.Context, token string, notificationID uuid.UUID) error {
	path := fmt.Sprintf("/notifications/%s/read", notificationID)
	return c.do(ctx, token, http.MethodPost, path, "notifications.mark_read", nil, nil)
}
