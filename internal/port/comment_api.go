package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// CommentInput is a new comment to append to a drawing's thread.
// Attachment and voice-note URLs reference files already uploaded upstream.
type CommentInput struct {
	DrawingID     uuid.UUID
	Text          string
	AttachmentURL string
	VoiceNoteURL  string
}

// CommentAPI is the upstream REST surface for drawing comment threads.
// Threads are append-only; there is no edit or delete.
type CommentAPI interface {
	List(ctx context.Context, token string, drawingID uuid.UUID) ([]domain.Comment, error)
	Add(ctx context.Context, token string, input CommentInput) (*domain.Comment, error)
}
