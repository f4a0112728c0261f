package port

import (
	"context"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// DirectoryAPI is the upstream REST surface for the vendor, resource, and
// client directories.
type DirectoryAPI interface {
	ListVendors(ctx context.Context, token string) ([]domain.Vendor, error)
	CreateVendor(ctx context.Context, token string, vendor domain.Vendor) (*domain.Vendor, error)
	ListResources(ctx context.Context, token string) ([]domain.Resource, error)
	CreateResource(ctx context.Context, token string, resource domain.Resource) (*domain.Resource, error)
	ListClients(ctx context.Context, token string) ([]domain.ClientAccount, error)
	CreateClient(ctx context.Context, token string, client domain.ClientAccount) (*domain.ClientAccount, error)
}
