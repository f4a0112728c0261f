package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// MockDrawingAPI is a mock implementation of port.DrawingAPI.
type MockDrawingAPI struct {
	mock.Mock
}

func (m *MockDrawingAPI) List(ctx context.Context, token string, projectID uuid.UUID) ([]domain.Drawing, error) {
	args := m.Called(ctx, token, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) Get(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	args := m.Called(ctx, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) Upload(ctx context.Context, token string, input port.DrawingUploadInput) (*domain.Drawing, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) Approve(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	args := m.Called(ctx, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) Issue(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	args := m.Called(ctx, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) MarkNotApplicable(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	args := m.Called(ctx, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}

func (m *MockDrawingAPI) RequestRevision(ctx context.Context, token string, drawingID uuid.UUID, note string) (*domain.Drawing, error) {
	args := m.Called(ctx, token, drawingID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drawing), args.Error(1)
}
