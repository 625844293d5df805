package catalog

import (
	"context"
	"errors"
	"strings"

	"bookly/internal/domain"
	"bookly/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	taken, err := s.services.ExistsByName(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	svc := &domain.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.services.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateServiceRequest) (*domain.Service, error) {
	taken, err := s.services.ExistsByName(ctx, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	rows, err := s.services.Update(ctx, &domain.Service{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete is logical: the service keeps its row but stops being bookable.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	rows, err := s.services.SoftDelete(ctx, id)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrNotFound
	}
	return true, nil
}

func (s *Service) List(ctx context.Context, f repository.ServiceFilter) ([]domain.Service, int64, error) {
	return s.services.List(ctx, f)
}
