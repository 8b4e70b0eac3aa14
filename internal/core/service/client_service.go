package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type ClientService struct {
	clients ports.ClientRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, users ports.UserRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, users: users, logger: logger}
}

func (s *ClientService) List(ctx context.Context, q ports.SearchQuery) ([]domain.Client, int64, error) {
	return s.clients.Search(ctx, q)
}

// Get resolves the client first so a missing id is a 404 for every caller,
// then applies the ownership predicate.
func (s *ClientService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Client, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessClient(c.ID) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Users = users
	return c, nil
}

func (s *ClientService) Create(ctx context.Context, c *domain.Client) error {
	if err := s.clients.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return err
	}
	s.logger.Info().Int64("client_id", c.ID).Msg("client created")
	return nil
}

func (s *ClientService) Update(ctx context.Context, p domain.Principal, id int64, patch domain.ClientPatch) (*domain.Client, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccessClient(c.ID) {
		return nil, domain.ErrForbidden
	}

	patch.Apply(c)
	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}
