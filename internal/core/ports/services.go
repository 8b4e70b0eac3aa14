package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

type ClientService interface {
	List(ctx context.Context, q SearchQuery) ([]domain.Client, int64, error)
	// Get loads the client with its users after the ownership check.
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, p domain.Principal, id int64, patch domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

type MobileService interface {
	List(ctx context.Context, q SearchQuery) ([]domain.Mobile, int64, error)
	Get(ctx context.Context, id int64) (*domain.Mobile, error)
	Create(ctx context.Context, m *domain.Mobile) error
	Update(ctx context.Context, id int64, patch domain.MobilePatch) (*domain.Mobile, error)
	Delete(ctx context.Context, id int64) error
}

// NewUserInput is the create payload once validated.
type NewUserInput struct {
	Email    string
	Password string
	Fullname string
	Age      int
}

type UserService interface {
	// List scopes non-admin callers to their own client.
	List(ctx context.Context, p domain.Principal, q SearchQuery) ([]domain.User, int64, error)
	ListByClient(ctx context.Context, clientID int64, q SearchQuery) ([]domain.User, int64, error)
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.User, error)
	// Create attaches the new user to the caller's client. Admins are refused.
	Create(ctx context.Context, p domain.Principal, in NewUserInput) (*domain.User, error)
	CreateForClient(ctx context.Context, clientID int64, in NewUserInput) (*domain.User, error)
	Update(ctx context.Context, p domain.Principal, id int64, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, p domain.Principal, id int64) error
}
