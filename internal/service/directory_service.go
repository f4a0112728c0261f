package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
)

var directoryCacheHits = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fdim_directory_cache_requests_total",
		Help: "Directory list requests by cache outcome.",
	},
	[]string{"kind", "outcome"},
)

// directoryEntry binds a cached list to the bearer token that fetched it.
// A hit is only served to a caller presenting the same token; anyone else
// falls through to the upstream API, which is the authority that rejects
// forged or expired tokens. Without the binding a cache hit would bypass
// validation entirely.
type directoryEntry struct {
	token string
	data  interface{}
}

// DirectoryService serves the vendor, resource, and client directories.
// Lists are cached briefly since directories change rarely and every
// dashboard visit reads them; creation is owner-only and invalidates the
// affected list.
type DirectoryService interface {
	Vendors(ctx context.Context, token string) ([]domain.Vendor, error)
	CreateVendor(ctx context.Context, viewer domain.Viewer, token string, vendor domain.Vendor) (*domain.Vendor, error)
	Resources(ctx context.Context, token string) ([]domain.Resource, error)
	CreateResource(ctx context.Context, viewer domain.Viewer, token string, resource domain.Resource) (*domain.Resource, error)
	Clients(ctx context.Context, token string) ([]domain.ClientAccount, error)
	CreateClient(ctx context.Context, viewer domain.Viewer, token string, client domain.ClientAccount) (*domain.ClientAccount, error)
}

type directoryService struct {
	api   port.DirectoryAPI
	cache *expirable.LRU[domain.DirectoryKind, directoryEntry]
}

// NewDirectoryService creates a DirectoryService with a list cache of the
// given TTL.
func NewDirectoryService(api port.DirectoryAPI, ttl time.Duration) DirectoryService {
	// Three fixed keys, one per directory kind.
	return &directoryService{
		api:   api,
		cache: expirable.NewLRU[domain.DirectoryKind, directoryEntry](3, nil, ttl),
	}
}

// lookup returns the cached list for kind only when the presented token
// matches the one that populated the entry, and records the cache outcome.
func (s *directoryService) lookup(kind domain.DirectoryKind, token string) (interface{}, bool) {
	if entry, ok := s.cache.Get(kind); ok && entry.token == token {
		directoryCacheHits.WithLabelValues(string(kind), "hit").Inc()
		return entry.data, true
	}
	directoryCacheHits.WithLabelValues(string(kind), "miss").Inc()
	return nil, false
}

func (s *directoryService) Vendors(ctx context.Context, token string) ([]domain.Vendor, error) {
	if cached, ok := s.lookup(domain.DirectoryVendors, token); ok {
		return cached.([]domain.Vendor), nil
	}

	vendors, err := s.api.ListVendors(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	s.cache.Add(domain.DirectoryVendors, directoryEntry{token: token, data: vendors})
	return vendors, nil
}

func (s *directoryService) CreateVendor(ctx context.Context, viewer domain.Viewer, token string, vendor domain.Vendor) (*domain.Vendor, error) {
	if err := s.requireOwner(viewer); err != nil {
		return nil, err
	}
	created, err := s.api.CreateVendor(ctx, token, vendor)
	if err != nil {
		return nil, fmt.Errorf("creating vendor: %w", err)
	}
	s.cache.Remove(domain.DirectoryVendors)
	return created, nil
}

func (s *directoryService) Resources(ctx context.Context, token string) ([]domain.Resource, error) {
	if cached, ok := s.lookup(domain.DirectoryResources, token); ok {
		return cached.([]domain.Resource), nil
	}

	resources, err := s.api.ListResources(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	s.cache.Add(domain.DirectoryResources, directoryEntry{token: token, data: resources})
	return resources, nil
}

func (s *directoryService) CreateResource(ctx context.Context, viewer domain.Viewer, token string, resource domain.Resource) (*domain.Resource, error) {
	if err := s.requireOwner(viewer); err != nil {
		return nil, err
	}
	created, err := s.api.CreateResource(ctx, token, resource)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}
	s.cache.Remove(domain.DirectoryResources)
	return created, nil
}

func (s *directoryService) Clients(ctx context.Context, token string) ([]domain.ClientAccount, error) {
	if cached, ok := s.lookup(domain.DirectoryClients, token); ok {
		return cached.([]domain.ClientAccount), nil
	}

	clients, err := s.api.ListClients(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	s.cache.Add(domain.DirectoryClients, directoryEntry{token: token, data: clients})
	return clients, nil
}

func (s *directoryService) CreateClient(ctx context.Context, viewer domain.Viewer, token string, client domain.ClientAccount) (*domain.ClientAccount, error) {
	if err := s.requireOwner(viewer); err != nil {
		return nil, err
	}
	created, err := s.api.CreateClient(ctx, token, client)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	s.cache.Remove(domain.DirectoryClients)
	return created, nil
}

func (s *directoryService) requireOwner(viewer domain.Viewer) error {
	if workflow.ClassifyViewer(viewer) != domain.TierOwner {
		return fmt.Errorf("directory write by %s: %w", viewer.Role, domain.ErrForbidden)
	}
	return nil
}
