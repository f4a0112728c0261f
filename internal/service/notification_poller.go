package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pollCycles = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fdim_notification_poll_cycles_total",
	Help: "Completed notification poll cycles.",
})

// NotificationPoller keeps the unread badge warm for active viewers by
// refreshing the count cache on a fixed interval. The app has no push
// channel; polling is the delivery model end to end.
type NotificationPoller struct {
	svc      NotificationService
	interval time.Duration
	wg       sync.WaitGroup
}

// NewNotificationPoller creates a NotificationPoller.
func NewNotificationPoller(svc NotificationService, interval time.Duration) *NotificationPoller {
	return &NotificationPoller{svc: svc, interval: interval}
}

// Start runs the polling loop until ctx is canceled. It blocks until the
// in-flight refresh pass has finished.
func (p *NotificationPoller) Start(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.Printf("notificationPoller: started (interval=%s)", p.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("notificationPoller: shutting down, waiting for in-flight refresh...")
			p.wg.Wait()
			log.Printf("notificationPoller: shutdown complete")
			return
		case <-ticker.C:
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()

				refreshCtx, cancel := context.WithTimeout(context.Background(), p.interval)
				defer cancel()

				refreshed := p.svc.RefreshActive(refreshCtx)
				pollCycles.Inc()
				if refreshed > 0 {
					log.Printf("notificationPoller: refreshed %d viewer(s)", refreshed)
				}
			}()
		}
	}
}
