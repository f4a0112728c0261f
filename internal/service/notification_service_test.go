package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
	"github.com/deepaksahajwani/4th-Dimension-sub002/mocks"
)

func TestNotificationService_Count_CachesPerViewer(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	viewer := teamLead()
	api.On("UnreadCount", mock.Anything, "tok").Return(3, nil).Once()

	first, err := svc.Count(context.Background(), viewer, "tok")
	assert.NoError(t, err)
	assert.Equal(t, 3, first.Unread)

	// Second call within the TTL is served from cache.
	second, err := svc.Count(context.Background(), viewer, "tok")
	assert.NoError(t, err)
	assert.Equal(t, 3, second.Unread)
	api.AssertExpectations(t)
}

func TestNotificationService_Count_SeparateViewers(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	api.On("UnreadCount", mock.Anything, "tok-a").Return(1, nil).Once()
	api.On("UnreadCount", mock.Anything, "tok-b").Return(7, nil).Once()

	a, err := svc.Count(context.Background(), teamLead(), "tok-a")
	assert.NoError(t, err)
	b, err2 := svc.Count(context.Background(), owner(), "tok-b")
	assert.NoError(t, err2)

	assert.Equal(t, 1, a.Unread)
	assert.Equal(t, 7, b.Unread)
}

func TestNotificationService_Count_CacheBoundToToken(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	viewer := teamLead()
	api.On("UnreadCount", mock.Anything, "tok").Return(3, nil).Once()
	api.On("UnreadCount", mock.Anything, "forged-tok").Return(0, domain.ErrUnauthorized).Once()

	_, err := svc.Count(context.Background(), viewer, "tok")
	assert.NoError(t, err)

	// Same subject UUID, different token: the warm entry must not be
	// served. The call goes upstream, where the forged token is rejected.
	count, err := svc.Count(context.Background(), viewer, "forged-tok")
	assert.Nil(t, count)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	api.AssertExpectations(t)
}

func TestNotificationService_Count_UpstreamError(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	api.On("UnreadCount", mock.Anything, "tok").Return(0, domain.ErrUnauthorized)

	count, err := svc.Count(context.Background(), teamLead(), "tok")

	assert.Nil(t, count)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestNotificationService_MarkRead_InvalidatesCache(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	viewer := teamLead()
	notificationID := uuid.New()

	api.On("UnreadCount", mock.Anything, "tok").Return(2, nil).Once()
	api.On("MarkRead", mock.Anything, "tok", notificationID).Return(nil)
	api.On("UnreadCount", mock.Anything, "tok").Return(1, nil).Once()

	_, err := svc.Count(context.Background(), viewer, "tok")
	assert.NoError(t, err)

	err = svc.MarkRead(context.Background(), viewer, "tok", notificationID)
	assert.NoError(t, err)

	count, err := svc.Count(context.Background(), viewer, "tok")
	assert.NoError(t, err)
	assert.Equal(t, 1, count.Unread)
	api.AssertExpectations(t)
}

func TestNotificationService_RefreshActive(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	api.On("UnreadCount", mock.Anything, "tok").Return(4, nil)

	_, err := svc.Count(context.Background(), teamLead(), "tok")
	assert.NoError(t, err)

	refreshed := svc.RefreshActive(context.Background())
	assert.Equal(t, 1, refreshed)
}

func TestNotificationService_RefreshActive_SkipsFailures(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	api.On("UnreadCount", mock.Anything, "tok").Return(4, nil).Once()
	api.On("UnreadCount", mock.Anything, "tok").Return(0, domain.ErrUpstreamTimeout)

	_, err := svc.Count(context.Background(), teamLead(), "tok")
	assert.NoError(t, err)

	refreshed := svc.RefreshActive(context.Background())
	assert.Equal(t, 0, refreshed)
}

func TestNotificationService_RefreshActive_EvictsDeadToken(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	api.On("UnreadCount", mock.Anything, "tok").Return(4, nil).Once()
	api.On("UnreadCount", mock.Anything, "tok").Return(0, domain.ErrUnauthorized).Once()

	_, err := svc.Count(context.Background(), teamLead(), "tok")
	assert.NoError(t, err)

	// The token stopped authenticating: the entry is dropped instead of
	// failing every cycle, so the next pass makes no upstream call.
	refreshed := svc.RefreshActive(context.Background())
	assert.Equal(t, 0, refreshed)

	refreshed = svc.RefreshActive(context.Background())
	assert.Equal(t, 0, refreshed)
	api.AssertExpectations(t)
}

func TestNotificationService_List(t *testing.T) {
	api := new(mocks.MockNotificationAPI)
	svc := service.NewNotificationService(api, 16, time.Minute)

	expected := []domain.Notification{{ID: uuid.New(), Title: "Drawing issued"}}
	api.On("List", mock.Anything, "tok", 50).Return(expected, nil)

	notifications, err := svc.List(context.Background(), "tok", 50)

	assert.NoError(t, err)
	assert.Equal(t, expected, notifications)
}
