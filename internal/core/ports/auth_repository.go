package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

// CredentialStore is the slice of user persistence needed for authentication.
// Every UserRepository satisfies it.
type CredentialStore interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}
