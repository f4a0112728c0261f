package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// MockAccountAPI is a mock implementation of port.AccountAPI.
type MockAccountAPI struct {
	mock.Mock
}

func (m *MockAccountAPI) Register(ctx context.Context, request domain.RegistrationRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAccountAPI) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
