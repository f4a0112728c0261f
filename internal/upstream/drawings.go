package upstream

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
)

// DrawingClient implements port.DrawingAPI.
type DrawingClient struct {
	*Client
}

// NewDrawingClient creates a DrawingClient sharing the base client.
func NewDrawingClient(c *Client) *DrawingClient {
	return &DrawingClient{Client: c}
}

func (c *DrawingClient) List(ctx context.Context, token string, projectID uuid.UUID) ([]domain.Drawing, error) {
	var drawings []domain.Drawing
	path := fmt.Sprintf("/projects/%s/drawings", projectID)
	if err := c.do(ctx, token, http.MethodGet, path, "drawings.list", nil, &drawings); err != nil {
		return nil, err
	}
	return drawings, nil
}

func (c *DrawingClient) Get(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	var d domain.Drawing
	path := fmt.Sprintf("/drawings/%s", drawingID)
	if err := c.do(ctx, token, http.MethodGet, path, "drawings.get", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Upload streams a multipart file through to the upstream upload endpoint.
// The body is piped, not buffered, so large drawings never sit in gateway
// memory.
func (c *DrawingClient) Upload(ctx context.Context, token string, input port.DrawingUploadInput) (*domain.Drawing, error) {
	if c.maxUploadLen > 0 && input.Size > c.maxUploadLen {
		return nil, fmt.Errorf("upload of %d bytes: %w", input.Size, domain.ErrFileTooLarge)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", input.FileName)
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, input.Body); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	path := fmt.Sprintf("%s/drawings/%s/upload", c.baseURL, input.DrawingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, pr)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	var d domain.Drawing
	if err := c.roundTrip(c.uploadHTTP, req, "drawings.upload", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *DrawingClient) Approve(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	return c.mutate(ctx, token, drawingID, "approve", "drawings.approve", nil)
}

func (c *DrawingClient) Issue(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	return c.mutate(ctx, token, drawingID, "issue", "drawings.issue", nil)
}

func (c *DrawingClient) MarkNotApplicable(ctx context.Context, token string, drawingID uuid.UUID) (*domain.Drawing, error) {
	return c.mutate(ctx, token, drawingID, "not-applicable", "drawings.mark_na", nil)
}

func (c *DrawingClient) RequestRevision(ctx context.Context, token string, drawingID uuid.UUID, note string) (*domain.Drawing, error) {
	body := map[string]string{"note": note}
	return c.mutate(ctx, token, drawingID, "request-revision", "drawings.request_revision", body)
}

func (c *DrawingClient) mutate(ctx context.Context, token string, drawingID uuid.UUID, verb, endpoint string, body interface{}) (*domain.Drawing, error) {
	var d domain.Drawing
	path := fmt.Sprintf("/drawings/%s/%s", drawingID, verb)
	if err := c.do(ctx, token, http.MethodPost, path, endpoint, body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
