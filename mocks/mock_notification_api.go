package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// MockNotificationAPI is a mock implementation of port.NotificationAPI.
type MockNotificationAPI struct {
	mock.Mock
}

func (m *MockNotificationAPI) List(ctx context.Context, token string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, token, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationAPI) UnreadCount(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationAPI) MarkRead(ctx context.Context, token string, notificationID uuid.UUID) error {
	args := m.Called(ctx, token, notificationID)
	return args.Error(0)
}
