package port

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// DrawingUploadInput encapsulates a multipart file streamed through to the
// upstream upload endpoint. Body is consumed once and never buffered to disk.
type DrawingUploadInput struct {
	DrawingID   uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DrawingAPI is the upstream REST surface for drawings. The bearer token is
// the caller's, forwarded verbatim; the upstream backend is the authority on
// every mutation.
type DrawingAPI interface {
	List(ctx context.Context, token string, projectID uuid.UUID) ([]domain.Drawing, error)
	Get(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error)
	Upload(ctx context.Context, token string, input DrawingUploadInput) (*domain.Drawing, error)
	Approve(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error)
	Issue(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error)
	MarkNotApplicable(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error)
	RequestRevision(ctx context.Context, token string, drawingID uuid.UUID, note string) (*domain.Drawing, error)
}
