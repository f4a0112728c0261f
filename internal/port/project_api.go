package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

// ProjectAPI is the upstream REST surface for projects. The backend scopes
// the list to what the token's account may see.
type ProjectAPI interface {
	List(ctx context.Context, token string) ([]domain.Project, error)
	Get(ctx context.Context, token string, projectID uuid.UUID) (*domain.Project, error)
}
