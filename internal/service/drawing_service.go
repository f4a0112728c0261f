package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
)

// DrawingService serves drawing views and lifecycle mutations. Every
// mutation is gated through the workflow engine before it reaches the
// upstream API; the upstream re-validates, the gateway check just fails fast
// and keeps external tiers from ever triggering internal actions.
type DrawingService interface {
	List(ctx context.Context, viewer domain.Viewer, token string, projectID uuid.UUID) ([]domain.DrawingView, error)
	Get(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error)
	Progress(ctx context.Context, token string, projectID uuid.UUID) (*domain.Progress, error)
	Upload(ctx context.Context, viewer domain.Viewer, token string, input port.DrawingUploadInput) (*domain.DrawingView, error)
	Approve(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error)
	Issue(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error)
	MarkNotApplicable(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error)
	RequestRevision(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID, note string) (*domain.DrawingView, error)
}

// DrawingMutation is the shared signature of the body-less lifecycle
// mutations (approve, issue, mark N/A).
type DrawingMutation func(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error)

type drawingService struct {
	drawingAPI port.DrawingAPI
	now        func() time.Time
}

// NewDrawingService creates a DrawingService implementation.
func NewDrawingService(drawingAPI port.DrawingAPI) DrawingService {
	return NewDrawingServiceWithClock(drawingAPI, time.Now)
}

// NewDrawingServiceWithClock creates a DrawingService with an injected clock.
func NewDrawingServiceWithClock(drawingAPI port.DrawingAPI, now func() time.Time) DrawingService {
	return &drawingService{drawingAPI: drawingAPI, now: now}
}

func (s *drawingService) List(ctx context.Context, viewer domain.Viewer, token string, projectID uuid.UUID) ([]domain.DrawingView, error) {
	drawings, err := s.drawingAPI.List(ctx, token, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing drawings: %w", err)
	}
	return workflow.Views(workflow.ClassifyViewer(viewer), drawings, s.now()), nil
}

func (s *drawingService) Get(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	d, err := s.drawingAPI.Get(ctx, token, drawingID)
	if err != nil {
		return nil, fmt.Errorf("getting drawing: %w", err)
	}
	view := workflow.View(workflow.ClassifyViewer(viewer), *d, s.now())
	return &view, nil
}

func (s *drawingService) Progress(ctx context.Context, token string, projectID uuid.UUID) (*domain.Progress, error) {
	drawings, err := s.drawingAPI.List(ctx, token, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing drawings for progress: %w", err)
	}
	p := workflow.Aggregate(drawings, s.now())
	return &p, nil
}

func (s *drawingService) Upload(ctx context.Context, viewer domain.Viewer, token string, input port.DrawingUploadInput) (*domain.DrawingView, error) {
	return s.mutate(ctx, viewer, token, input.DrawingID, domain.ActionUpload, func(tctx context.Context) (*domain.Drawing, error) {
		return s.drawingAPI.Upload(tctx, token, input)
	})
}

func (s *drawingService) Approve(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	return s.mutate(ctx, viewer, token, drawingID, domain.ActionApprove, func(tctx context.Context) (*domain.Drawing, error) {
		return s.drawingAPI.Approve(tctx, token, drawingID)
	})
}

func (s *drawingService) Issue(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	return s.mutate(ctx, viewer, token, drawingID, domain.ActionIssue, func(tctx context.Context) (*domain.Drawing, error) {
		return s.drawingAPI.Issue(tctx, token, drawingID)
	})
}

func (s *drawingService) MarkNotApplicable(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID) (*domain.DrawingView, error) {
	return s.mutate(ctx, viewer, token, drawingID, domain.ActionMarkNA, func(tctx context.Context) (*domain.Drawing, error) {
		return s.drawingAPI.MarkNotApplicable(tctx, token, drawingID)
	})
}

func (s *drawingService) RequestRevision(ctx context.Context, viewer domain.Viewer, token string, drawingID uuid.UUID, note string) (*domain.DrawingView, error) {
	return s.mutate(ctx, viewer, token, drawingID, domain.ActionRequestRevision, func(tctx context.Context) (*domain.Drawing, error) {
		return s.drawingAPI.RequestRevision(tctx, token, drawingID, note)
	})
}

// mutate fetches the current drawing, verifies the action is enabled for the
// viewer's tier and the drawing's state, runs the mutation, and returns the
// refreshed view.
func (s *drawingService) mutate(
	ctx context.Context,
	viewer domain.Viewer,
	token string,
	drawingID uuid.UUID,
	action domain.Action,
	call func(context.Context) (*domain.Drawing, error),
) (*domain.DrawingView, error) {
	current, err := s.drawingAPI.Get(ctx, token, drawingID)
	if err != nil {
		return nil, fmt.Errorf("getting drawing before %s: %w", action, err)
	}

	tier := workflow.ClassifyViewer(viewer)
	if !workflow.Allowed(action, tier, *current) {
		return nil, fmt.Errorf("%s on drawing %s: %w", action, drawingID, domain.ErrActionNotAllowed)
	}

	updated, err := call(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s on drawing %s: %w", action, drawingID, err)
	}

	view := workflow.View(tier, *updated, s.now())
	return &view, nil
}
