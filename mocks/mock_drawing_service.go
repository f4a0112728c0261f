package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// MockDrawingService is a mock implementation of service.DrawingService.
type MockDrawingService struct {
	mock.Mock
}

func (m *MockDrawingService) List(ctx context.Context, viewer domain.Viewer, token string, projectID uuid.UUID) ([]domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) Get(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) Progress(ctx context.Context, token string, projectID uuid.UUID) (*domain.Progress, error) {
	args := m.Called(ctx, token, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Progress), args.Error(1)
}

func (m *MockDrawingService) Upload(ctx context.Context, viewer domain.Viewer, token string, input port.DrawingUploadInput) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) Approve(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) Issue(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) MarkNotApplicable(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}

func (m *MockDrawingService) RequestRevision(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID, note string) (*domain.DrawingView, error) {
	args := m.Called(ctx, viewer, token, drawingID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawingView), args.Error(1)
}
