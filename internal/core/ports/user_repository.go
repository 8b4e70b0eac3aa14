package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

// UserRepository persists users. Returned users never carry Client; the
// service layer resolves it.
type UserRepository interface {
	// Search honours q.OwnerID when set.
	Search(ctx context.Context, q SearchQuery) ([]domain.User, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.User, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	// Create assigns u.ID and returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}
