package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// MockProjectAPI is a mock implementation of port.ProjectAPI.
type MockProjectAPI struct {
	mock.Mock
}

func (m *MockProjectAPI) List(ctx context.Context, token string) ([]domain.Project, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectAPI) Get(ctx context.Context, token string, projectID uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, token, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
