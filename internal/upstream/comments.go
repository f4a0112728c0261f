package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// CommentClient implements port.CommentAPI.
type CommentClient struct {
	*Client
}

// NewCommentClient creates a CommentClient sharing the base client.
func NewCommentClient(c *Client) *CommentClient {
	return &CommentClient{Client: c}
}

func (c *CommentClient) List(ctx context.Context, token string, drawingID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	path := fmt.Sprintf("/drawings/%s/comments", drawingID)
	if err := c.do(ctx, token, http.MethodGet, path, "comments.list", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *CommentClient) Add(ctx context.Context, token string, input port.CommentInput) (*domain.Comment, error) {
	body := map[string]string{
		"text":           input.Text,
		"attachment_url": input.AttachmentURL,
		"voice_note_url": input.VoiceNoteURL,
	}
	var comment domain.Comment
	path := fmt.Sprintf("/drawings/%s/comments", input.DrawingID)
	if err := c.do(ctx, token, http.MethodPost, path, "comments.add", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
