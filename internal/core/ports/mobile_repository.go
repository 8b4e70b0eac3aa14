package ports

import (
	"context"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

type MobileRepository interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.Mobile, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Mobile, error)
	Create(ctx context.Context, m *domain.Mobile) error
	Update(ctx context.Context, m *domain.Mobile) error
	Delete(ctx context.Context, id int64) error
}

// MobileCache is an optional read-through cache for mobile lookups.
type MobileCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context, id int64) (m *domain.Mobile, ok bool, err error)
	Set(ctx context.Context, m *domain.Mobile) error
	Delete(ctx context.Context, id int64) error
}
