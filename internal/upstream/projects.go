package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// ProjectClient implements port.ProjectAPI.
type ProjectClient struct {
	*Client
}

// NewProjectClient creates a ProjectClient sharing the base client.
func NewProjectClient(c *Client) *ProjectClient {
	return &ProjectClient{Client: c}
}

func (c *ProjectClient) List(ctx context.Context, token string) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, token, http.MethodGet, "/projects", "projects.list", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *ProjectClient) Get(ctx context.Context, token string, projectID uuid.UUID) (*domain.Project, error) {
	var p domain.Project
	path := fmt.Sprintf("/projects/%s", projectID)
	if err := c.do(ctx, token, http.MethodGet, path, "projects.get", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
