package schedule

import (
	"context"
	"time"

	"bookly/internal/domain"
	"bookly/internal/repository"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ExistsOverlapping(ctx context.Context, serviceID string, start, end time.Time, excludeID string) (bool, error)
	Update(ctx context.Context, s *domain.Schedule) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, f repository.ScheduleFilter) ([]domain.Schedule, int64, error)
}

// ServiceRepository is the slice of the catalog store the schedule lifecycle
// needs: existence of an active service.
type ServiceRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Service, error)
}
