package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

type MobileService struct {
	repo   ports.MobileRepository
	cache  ports.MobileCache // nil disables caching
	logger zerolog.Logger
}

func NewMobileService(repo ports.MobileRepository, cache ports.MobileCache, logger zerolog.Logger) *MobileService {
	return &MobileService{repo: repo, cache: cache, logger: logger}
}

func (s *MobileService) List(ctx context.Context, q ports.SearchQuery) ([]domain.Mobile, int64, error) {
	return s.repo.Search(ctx, q)
}

// Get reads through the cache. Cache failures are logged and the store is
// used instead.
func (s *MobileService) Get(ctx context.Context, id int64) (*domain.Mobile, error) {
	if s.cache != nil {
		m, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Int64("mobile_id", id).Msg("mobile cache read failed")
		} else if ok {
			return m, nil
		}
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, m); err != nil {
			s.logger.Warn().Err(err).Int64("mobile_id", id).Msg("mobile cache write failed")
		}
	}
	return m, nil
}

func (s *MobileService) Create(ctx context.Context, m *domain.Mobile) error {
	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Msg("failed to create mobile")
		return err
	}
	s.logger.Info().Int64("mobile_id", m.ID).Msg("mobile created")
	return nil
}

func (s *MobileService) Update(ctx context.Context, id int64, patch domain.MobilePatch) (*domain.Mobile, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(m)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	return m, nil
}

func (s *MobileService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, id)
	s.logger.Info().Int64("mobile_id", id).Msg("mobile deleted")
	return nil
}

func (s *MobileService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("mobile_id", id).Msg("mobile cache eviction failed")
	}
}
