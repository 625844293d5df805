package schedule

import (
	"context"
	"errors"
	"time"

	"bookly/internal/domain"
	"bookly/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	schedules ScheduleRepository
	services  ServiceRepository
}

func NewService(schedules ScheduleRepository, services ServiceRepository) *Service {
	return &Service{schedules: schedules, services: services}
}

// Create adds a slot for an active service. The candidate range must not
// contain an existing schedule of the same service.
func (s *Service) Create(ctx context.Context, req CreateScheduleRequest) (*domain.Schedule, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}
	if req.StartTime.Before(time.Now()) {
		return nil, ErrValidation
	}

	if _, err := s.services.GetActiveByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	overlaps, err := s.schedules.ExistsOverlapping(ctx, req.ServiceID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrConflict
	}

	sched := &domain.Schedule{
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Update replaces the slot's time range and service reference. The overlap
// check excludes the schedule itself, so re-saving an unchanged range never
// conflicts.
func (s *Service) Update(ctx context.Context, id string, req UpdateScheduleRequest) (*domain.Schedule, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrValidation
	}

	overlaps, err := s.schedules.ExistsOverlapping(ctx, req.ServiceID, req.StartTime, req.EndTime, id)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, ErrConflict
	}

	rows, err := s.schedules.Update(ctx, &domain.Schedule{
		ID:        id,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes the slot physically. Dependent bookings are left in place.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	rows, err := s.schedules.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrNotFound
	}
	return true, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Schedule, error) {
	sched, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sched, nil
}

func (s *Service) List(ctx context.Context, f repository.ScheduleFilter) ([]domain.Schedule, int64, error) {
	return s.schedules.List(ctx, f)
}
