package upstream

import (
	"context"
	"net/http"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// DirectoryClient implements port.DirectoryAPI.
type DirectoryClient struct {
	*Client
}

// NewDirectoryClient creates a DirectoryClient sharing the base client.
func NewDirectoryClient(c *Client) *DirectoryClient {
	return &DirectoryClient{Client: c}
}

func (c *DirectoryClient) ListVendors(ctx context.Context, token string) ([]domain.Vendor, error) {
	var vendors []domain.Vendor
	if err := c.do(ctx, token, http.MethodGet, "/directory/vendors", "directory.vendors.list", nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *DirectoryClient) CreateVendor(ctx context.Context, token string, vendor domain.Vendor) (*domain.Vendor, error) {
	var created domain.Vendor
	if err := c.do(ctx, token, http.MethodPost, "/directory/vendors", "directory.vendors.create", vendor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DirectoryClient) ListResources(ctx context.Context, token string) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := c.do(ctx, token, http.MethodGet, "/directory/resources", "directory.resources.list", nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (c *DirectoryClient) CreateResource(ctx context.Context, token string, resource domain.Resource) (*domain.Resource, error) {
	var created domain.Resource
	if err := c.do(ctx, token, http.MethodPost, "/directory/resources", "directory.resources.create", resource, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *DirectoryClient) ListClients(ctx context.Context, token string) ([]domain.ClientAccount, error) {
	var clients []domain.ClientAccount
	if err := c.do(ctx, token, http.MethodGet, "/directory/clients", "directory.clients.list", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *DirectoryClient) CreateClient(ctx context.Context, token string, client domain.ClientAccount) (*domain.ClientAccount, error) {
	var created domain.ClientAccount
	if err := c.do(ctx, token, http.MethodPost, "/directory/clients", "directory.clients.create", client, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
