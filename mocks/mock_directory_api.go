package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// MockDirectoryAPI is a mock implementation of port.DirectoryAPI.
type MockDirectoryAPI struct {
	mock.Mock
}

func (m *MockDirectoryAPI) ListVendors(ctx context.Context, token string) ([]domain.Vendor, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockDirectoryAPI) CreateVendor(ctx context.Context, token string, vendor domain.Vendor) (*domain.Vendor, error) {
	args := m.Called(ctx, token, vendor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockDirectoryAPI) ListResources(ctx context.Context, token string) ([]domain.Resource, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockDirectoryAPI) CreateResource(ctx context.Context, token string, resource domain.Resource) (*domain.Resource, error) {
	args := m.Called(ctx, token, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockDirectoryAPI) ListClients(ctx context.Context, token string) ([]domain.ClientAccount, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientAccount), args.Error(1)
}

func (m *MockDirectoryAPI) CreateClient(ctx context.Context, token string, client domain.ClientAccount) (*domain.ClientAccount, error) {
	args := m.Called(ctx, token, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientAccount), args.Error(1)
}
