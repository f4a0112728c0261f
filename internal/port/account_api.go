package port

import (
	"context"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// AccountAPI is the upstream REST surface for account flows. Register is
// unauthenticated; the backend queues the request for owner approval.
type AccountAPI interface {
	Register(ctx context.Context, request domain.RegistrationRequest) error
	GetProfile(ctx context.Context, token string) (*domain.Profile, error)
}
