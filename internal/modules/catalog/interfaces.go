package catalog

import (
	"context"

	"bookly/internal/domain"
	"bookly/internal/repository"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetActiveByID(ctx context.Context, id string) (*domain.Service, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, s *domain.Service) (int64, error)
	SoftDelete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, f repository.ServiceFilter) ([]domain.Service, int64, error)
}
