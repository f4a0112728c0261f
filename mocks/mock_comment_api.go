package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// MockCommentAPI is a mock implementation of port.CommentAPI.
type MockCommentAPI struct {
	mock.Mock
}

func (m *MockCommentAPI) List(ctx context.Context, token string, drawingID uuid.UUID) ([]domain.Comment, error) {
	args := m.Called(ctx, token, drawingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentAPI) Add(ctx context.Context, token string, input port.CommentInput) (*domain.Comment, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}
