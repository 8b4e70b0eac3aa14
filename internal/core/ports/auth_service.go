package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

type AuthService interface {
	// Login returns a signed bearer token for valid credentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// EnsureAdmin creates the bootstrap administrator when absent.
	EnsureAdmin(ctx context.Context, email, password string) error
}
