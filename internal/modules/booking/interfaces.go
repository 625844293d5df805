package booking

import (
	"context"

	"bookly/internal/domain"
	"bookly/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ExistsActiveBySchedule(ctx context.Context, scheduleID, excludeID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	UpdateSchedule(ctx context.Context, id, scheduleID string) error
	SoftDelete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error)
}

type ServiceRepository interface {
	GetActiveByID(ctx context.Context, id string) (*domain.Service, error)
}

type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
}
