package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// AccountService handles registration submissions and profile reads. Both
// are thin proxies; the backend owns approval, credentials, and sessions.
type AccountService interface {
	Register(ctx context.Context, request domain.RegistrationRequest) error
	Profile(ctx context.Context, token string) (*domain.Profile, error)
}

type accountService struct {
	api port.AccountAPI
}

// NewAccountService creates an AccountService implementation.
func NewAccountService(api port.AccountAPI) AccountService {
	return &accountService{api: api}
}

func (s *accountService) Register(ctx context.Context, request domain.RegistrationRequest) error {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.TrimSpace(request.Email)
	if request.Name == "" || request.Email == "" || !strings.Contains(request.Email, "@") {
		return fmt.Errorf("registration requires a name and valid email: %w", domain.ErrInvalidInput)
	}
	if err := s.api.Register(ctx, request); err != nil {
		return fmt.Errorf("submitting registration: %w", err)
	}
	return nil
}

func (s *accountService) Profile(ctx context.Context, token string) (*domain.Profile, error) {
	profile, err := s.api.GetProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return profile, nil
}
