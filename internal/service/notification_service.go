package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

var (
	countCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fdim_notification_count_cache_hits_total",
		Help: "Unread-count requests served from the cache.",
	})
	countCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fdim_notification_count_cache_misses_total",
		Help: "Unread-count requests that went to the upstream API.",
	})
)

// countEntry is one cached unread counter. The bearer token is kept for two
// reasons: a hit is only served to a caller presenting the same token (the
// sub claim alone is unverified, so it cannot gate access by itself), and
// the background poller replays it to refresh the entry while the viewer
// stays active. Entries expire with the cache TTL once the viewer goes
// quiet, and are evicted early when the token stops authenticating.
type countEntry struct {
	count domain.NotificationCount
	token string
}

// NotificationService serves the viewer's inbox and the nav-bar unread
// badge. The badge is cached per viewer so aggressive UI polling does not
// hammer the upstream API.
type NotificationService interface {
	List(ctx context.Context, token string, limit int) ([]domain.Notification, error)
	Count(ctx context.Context, viewer domain.Viewer, token string) (*domain.NotificationCount, error)
	MarkRead(ctx context.Context, viewer domain.Viewer, token string, notificationID uuid.UUID) error

	// RefreshActive re-fetches the unread count for every cached viewer.
	// Called by the background poller; returns the number refreshed.
	RefreshActive(ctx context.Context) int
}

type notificationService struct {
	api   port.NotificationAPI
	cache *expirable.LRU[uuid.UUID, countEntry]
	now   func() time.Time
}

// NewNotificationService creates a NotificationService with a per-viewer
// count cache of the given size and TTL.
func NewNotificationService(api port.NotificationAPI, maxEntries int, ttl time.Duration) NotificationService {
	return &notificationService{
		api:   api,
		cache: expirable.NewLRU[uuid.UUID, countEntry](maxEntries, nil, ttl),
		now:   time.Now,
	}
}

func (s *notificationService) List(ctx context.Context, token string, limit int) ([]domain.Notification, error) {
	notifications, err := s.api.List(ctx, token, limit)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

func (s *notificationService) Count(ctx context.Context, viewer domain.Viewer, token string) (*domain.NotificationCount, error) {
	if entry, ok := s.cache.Get(viewer.UserID); ok && entry.token == token {
		countCacheHits.Inc()
		count := entry.count
		return &count, nil
	}
	countCacheMisses.Inc()
	return s.refresh(ctx, viewer.UserID, token)
}

func (s *notificationService) MarkRead(ctx context.Context, viewer domain.Viewer, token string, notificationID uuid.UUID) error {
	if err := s.api.MarkRead(ctx, token, notificationID); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	// Drop the stale badge so the next poll reflects the read.
	s.cache.Remove(viewer.UserID)
	return nil
}

// refresh fetches the unread count upstream and caches it.
func (s *notificationService) refresh(ctx context.Context, userID uuid.UUID, token string) (*domain.NotificationCount, error) {
	unread, err := s.api.UnreadCount(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetching unread count: %w", err)
	}
	count := domain.NotificationCount{Unread: unread, FetchedAt: s.now()}
	s.cache.Add(userID, countEntry{count: count, token: token})
	return &count, nil
}

// RefreshActive re-fetches the unread count for every viewer still in the
// cache, using the token from their last request. An entry whose token no
// longer authenticates is evicted so the credential does not linger and
// fail every cycle; other errors leave the stale entry until its TTL
// passes.
func (s *notificationService) RefreshActive(ctx context.Context) int {
	refreshed := 0
	for _, userID := range s.cache.Keys() {
		entry, ok := s.cache.Peek(userID)
		if !ok {
			continue
		}
		_, err := s.refresh(ctx, userID, entry.token)
		switch {
		case err == nil:
			refreshed++
		case errors.Is(err, domain.ErrUnauthorized):
			s.cache.Remove(userID)
		}
	}
	return refreshed
}
