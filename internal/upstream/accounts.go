package upstream

import (
	"context"
	"net/http"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// AccountClient implements port.AccountAPI.
type AccountClient struct {
	*Client
}

// NewAccountClient creates an AccountClient sharing the base client.
func NewAccountClient(c *Client) *AccountClient {
	return &AccountClient{Client: c}
}

// Register submits a signup request. No token: registration precedes login.
func (c *AccountClient) Register(ctx context.Context, request domain.RegistrationRequest) error {
	return c.do(ctx, "", http.MethodPost, "/accounts/register", "accounts.register", request, nil)
}

func (c *AccountClient) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, token, http.MethodGet, "/accounts/me", "accounts.profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
