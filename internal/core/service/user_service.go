package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type UserService struct {
	users      ports.UserRepository
	clients    ports.ClientRepository
	bcryptCost int
	logger     zerolog.Logger
	now        func() time.Time
}

func NewUserService(users ports.UserRepository, clients ports.ClientRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		users:      users,
		clients:    clients,
		bcryptCost: bcryptCost,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns every user to administrators without a client, and the
// caller's colleagues otherwise.
func (s *UserService) List(ctx context.Context, p domain.Principal, q ports.SearchQuery) ([]domain.User, int64, error) {
	switch {
	case p.ClientID != nil:
		id := *p.ClientID
		q.OwnerID = &id
	case p.IsAdmin():
		q.OwnerID = nil
	default:
		return nil, 0, domain.ErrForbidden
	}
	return s.search(ctx, q)
}

func (s *UserService) ListByClient(ctx context.Context, clientID int64, q ports.SearchQuery) ([]domain.User, int64, error) {
	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		return nil, 0, err
	}
	q.OwnerID = &clientID
	return s.search(ctx, q)
}

func (s *UserService) search(ctx context.Context, q ports.SearchQuery) ([]domain.User, int64, error) {
	users, total, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	if err := s.attachClients(ctx, users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessUser(u) {
		return nil, domain.ErrForbidden
	}
	if err := s.attachClient(ctx, u, nil); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, p domain.Principal, in ports.NewUserInput) (*domain.User, error) {
	if p.IsAdmin() {
		return nil, domain.ErrAdminMustTargetClient
	}
	if p.ClientID == nil {
		return nil, domain.ErrForbidden
	}
	return s.CreateForClient(ctx, *p.ClientID, in)
}

func (s *UserService) CreateForClient(ctx context.Context, clientID int64, in ports.NewUserInput) (*domain.User, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		CreatedAt:    s.now(),
		Age:          in.Age,
		Fullname:     in.Fullname,
		ClientID:     &client.ID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.Client = client

	s.logger.Info().Int64("user_id", u.ID).Int64("client_id", client.ID).Msg("user created")
	return u, nil
}

func (s *UserService) Update(ctx context.Context, p domain.Principal, id int64, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessUser(u) {
		return nil, domain.ErrForbidden
	}

	patch.Apply(u)
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	if err := s.attachClient(ctx, u, nil); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanDeleteUser(u) {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Int64("by", p.UserID).Msg("user deleted")
	return nil
}

// attachClients resolves each distinct client once per call.
func (s *UserService) attachClients(ctx context.Context, users []domain.User) error {
	seen := make(map[int64]*domain.Client)
	for i := range users {
		if err := s.attachClient(ctx, &users[i], seen); err != nil {
			return err
		}
	}
	return nil
}

func (s *UserService) attachClient(ctx context.Context, u *domain.User, seen map[int64]*domain.Client) error {
	if u.ClientID == nil {
		return nil
	}
	if c, ok := seen[*u.ClientID]; ok {
		u.Client = c
		return nil
	}
	c, err := s.clients.FindByID(ctx, *u.ClientID)
	if err != nil {
		return err
	}
	if seen != nil {
		seen[c.ID] = c
	}
	u.Client = c
	return nil
}
