package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
)

// Shortlist and fan-out limits for dashboard assembly.
const (
	dashboardNotifications  = 10
	dashboardShortlistLimit = 10
	dashboardFanout         = 4
)

// DashboardService assembles the role-shaped landing payload.
type DashboardService interface {
	Build(ctx context.Context, viewer domain.Viewer, token string) (*domain.Dashboard, error)
}

type dashboardService struct {
	projectAPI      port.ProjectAPI
	drawingAPI      port.DrawingAPI
	notificationAPI port.NotificationAPI
	now             func() time.Time
}

// NewDashboardService creates a DashboardService implementation.
func NewDashboardService(projectAPI port.ProjectAPI, drawingAPI port.DrawingAPI, notificationAPI port.NotificationAPI) DashboardService {
	return NewDashboardServiceWithClock(projectAPI, drawingAPI, notificationAPI, time.Now)
}

// NewDashboardServiceWithClock creates a DashboardService with an injected clock.
func NewDashboardServiceWithClock(projectAPI port.ProjectAPI, drawingAPI port.DrawingAPI, notificationAPI port.NotificationAPI, now func() time.Time) DashboardService {
	return &dashboardService{
		projectAPI:      projectAPI,
		drawingAPI:      drawingAPI,
		notificationAPI: notificationAPI,
		now:             now,
	}
}

// Build fetches projects and notifications concurrently, then fans out over
// projects to pull drawings and derive progress. Internal tiers additionally
// get shortlists of drawings awaiting approval or upload, derived from the
// same fetched set so the numbers always match the cards.
func (s *dashboardService) Build(ctx context.Context, viewer domain.Viewer, token string) (*domain.Dashboard, error) {
	tier := workflow.ClassifyViewer(viewer)
	now := s.now()

	var (
		projects      []domain.Project
		notifications []domain.Notification
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		projects, err = s.projectAPI.List(egCtx, token)
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		notifications, err = s.notificationAPI.List(egCtx, token, dashboardNotifications)
		if err != nil {
			return fmt.Errorf("listing notifications: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]domain.ProjectSummary, len(projects))
	drawingsByProject := make([][]domain.Drawing, len(projects))

	var mu sync.Mutex
	eg, egCtx = errgroup.WithContext(ctx)
	eg.SetLimit(dashboardFanout)
	for i := range projects {
		eg.Go(func() error {
			drawings, err := s.drawingAPI.List(egCtx, token, projects[i].ID)
			if err != nil {
				return fmt.Errorf("listing drawings for project %s: %w", projects[i].ID, err)
			}
			mu.Lock()
			defer mu.Unlock()
			summaries[i] = domain.ProjectSummary{
				Project:  projects[i],
				Progress: workflow.Aggregate(drawings, now),
			}
			drawingsByProject[i] = drawings
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	dash := &domain.Dashboard{
		Viewer:        viewer,
		Tier:          tier,
		Projects:      summaries,
		Notifications: notifications,
	}

	if workflow.Internal(tier) {
		dash.PendingApprovals, dash.PendingUploads = s.shortlists(tier, drawingsByProject, now)
	}
	return dash, nil
}

// shortlists collects drawings awaiting approval and drawings awaiting an
// upload (first upload or open revision), capped for display.
func (s *dashboardService) shortlists(tier domain.Tier, drawingsByProject [][]domain.Drawing, now time.Time) (approvals, uploads []domain.DrawingView) {
	for _, drawings := range drawingsByProject {
		for i := range drawings {
			switch workflow.ResolveStatus(drawings[i]) {
			case domain.StatusPendingApproval:
				if len(approvals) < dashboardShortlistLimit {
					approvals = append(approvals, workflow.View(tier, drawings[i], now))
				}
			case domain.StatusPendingUpload, domain.StatusRevisionNeeded:
				if len(uploads) < dashboardShortlistLimit {
					uploads = append(uploads, workflow.View(tier, drawings[i], now))
				}
			}
		}
	}
	return approvals, uploads
}
