package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
	"github.com/deepaksahajwani/4th-Dimension-sub002/mocks"
)

func TestDashboardService_Build_InternalViewer(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	notificationAPI := new(mocks.MockNotificationAPI)
	svc := service.NewDashboardServiceWithClock(projectAPI, drawingAPI, notificationAPI, fixedClock)

	projectID := uuid.New()
	projectAPI.On("List", mock.Anything, "tok").Return([]domain.Project{
		{ID: projectID, Name: "Hillside Villa"},
	}, nil)
	notificationAPI.On("List", mock.Anything, "tok", 10).Return([]domain.Notification{
		{ID: uuid.New(), Kind: domain.NotificationApproval, Title: "Drawing approved"},
	}, nil)
	drawingAPI.On("List", mock.Anything, "tok", projectID).Return([]domain.Drawing{
		{ID: uuid.New(), ProjectID: projectID, FileURL: "a.pdf", IsIssued: true},
		{ID: uuid.New(), ProjectID: projectID, FileURL: "b.pdf", UnderReview: true},
		{ID: uuid.New(), ProjectID: projectID},
	}, nil)

	dash, err := svc.Build(context.Background(), teamLead(), "tok")

	assert.NoError(t, err)
	assert.Equal(t, domain.TierTeamLead, dash.Tier)
	assert.Len(t, dash.Projects, 1)
	assert.Equal(t, 3, dash.Projects[0].Progress.Total)
	assert.Equal(t, 33, dash.Projects[0].Progress.Percent)
	assert.Len(t, dash.Notifications, 1)
	assert.Len(t, dash.PendingApprovals, 1)
	assert.Len(t, dash.PendingUploads, 1)
	projectAPI.AssertExpectations(t)
	drawingAPI.AssertExpectations(t)
	notificationAPI.AssertExpectations(t)
}

func TestDashboardService_Build_ExternalViewerOmitsShortlists(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	notificationAPI := new(mocks.MockNotificationAPI)
	svc := service.NewDashboardServiceWithClock(projectAPI, drawingAPI, notificationAPI, fixedClock)

	projectID := uuid.New()
	projectAPI.On("List", mock.Anything, "tok").Return([]domain.Project{{ID: projectID}}, nil)
	notificationAPI.On("List", mock.Anything, "tok", 10).Return([]domain.Notification{}, nil)
	drawingAPI.On("List", mock.Anything, "tok", projectID).Return([]domain.Drawing{
		{ID: uuid.New(), ProjectID: projectID, UnderReview: true, FileURL: "a.pdf"},
	}, nil)

	dash, err := svc.Build(context.Background(), client(), "tok")

	assert.NoError(t, err)
	assert.Equal(t, domain.TierExternal, dash.Tier)
	assert.Nil(t, dash.PendingApprovals)
	assert.Nil(t, dash.PendingUploads)
}

func TestDashboardService_Build_ProjectListError(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	notificationAPI := new(mocks.MockNotificationAPI)
	svc := service.NewDashboardServiceWithClock(projectAPI, drawingAPI, notificationAPI, fixedClock)

	projectAPI.On("List", mock.Anything, "tok").Return(nil, domain.ErrUpstream)
	notificationAPI.On("List", mock.Anything, "tok", 10).Return([]domain.Notification{}, nil).Maybe()

	dash, err := svc.Build(context.Background(), owner(), "tok")

	assert.Nil(t, dash)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestDashboardService_Build_NoProjects(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	notificationAPI := new(mocks.MockNotificationAPI)
	svc := service.NewDashboardServiceWithClock(projectAPI, drawingAPI, notificationAPI, fixedClock)

	projectAPI.On("List", mock.Anything, "tok").Return([]domain.Project{}, nil)
	notificationAPI.On("List", mock.Anything, "tok", 10).Return([]domain.Notification{}, nil)

	dash, err := svc.Build(context.Background(), owner(), "tok")

	assert.NoError(t, err)
	assert.Empty(t, dash.Projects)
	drawingAPI.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}
