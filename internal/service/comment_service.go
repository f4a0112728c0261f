package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
)

// CommentService serves drawing comment threads.
type CommentService interface {
	List(ctx context.Context, token string, drawingID uuid.UUID) ([]domain.Comment, error)
	Add(ctx context.Context, viewer domain.Viewer, token string, input port.CommentInput) (*domain.Comment, error)
}

type commentService struct {
	commentAPI port.CommentAPI
	drawingAPI port.DrawingAPI
}

// NewCommentService creates a CommentService implementation.
func NewCommentService(commentAPI port.CommentAPI, drawingAPI port.DrawingAPI) CommentService {
	return &commentService{commentAPI: commentAPI, drawingAPI: drawingAPI}
}

func (s *commentService) List(ctx context.Context, token string, drawingID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.commentAPI.List(ctx, token, drawingID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

// Add appends a comment after checking the drawing still accepts them
// (commenting is open to every tier but closed on N/A drawings).
func (s *commentService) Add(ctx context.Context, viewer domain.Viewer, token string, input port.CommentInput) (*domain.Comment, error) {
	if input.Text == "" && input.AttachmentURL == "" && input.VoiceNoteURL == "" {
		return nil, fmt.Errorf("empty comment: %w", domain.ErrInvalidInput)
	}

	drawing, err := s.drawingAPI.Get(ctx, token, input.DrawingID)
	if err != nil {
		return nil, fmt.Errorf("getting drawing for comment: %w", err)
	}
	if !workflow.Allowed(domain.ActionComment, workflow.ClassifyViewer(viewer), *drawing) {
		return nil, fmt.Errorf("comment on drawing %s: %w", input.DrawingID, domain.ErrActionNotAllowed)
	}

	comment, err := s.commentAPI.Add(ctx, token, input)
	if err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return comment, nil
}
