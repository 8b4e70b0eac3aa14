package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

// ClientRepository persists clients. FindByID does not load users.
type ClientRepository interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.Client, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	// Create assigns c.ID.
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	// Delete returns domain.ErrClientHasUsers while users still reference the client.
	Delete(ctx context.Context, id int64) error
}
