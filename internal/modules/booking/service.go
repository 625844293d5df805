package booking

import (
	"context"
	"errors"

	"bookly/internal/domain"
	"bookly/internal/repository"

	"gorm.io/gorm"
)

// activeBookingIndex is the partial unique index over active bookings; a
// violation means a concurrent writer won the slot between our conflict
// check and the write.
const activeBookingIndex = "idx_one_active_booking"

type Service struct {
	bookings  BookingRepository
	services  ServiceRepository
	schedules ScheduleRepository
}

func NewService(bookings BookingRepository, services ServiceRepository, schedules ScheduleRepository) *Service {
	return &Service{
		bookings:  bookings,
		services:  services,
		schedules: schedules,
	}
}

// Create claims a schedule slot for the actor. The slot must be free of
// active bookings regardless of the requested status: a cancelled booking
// request against a held slot is rejected the same way.
func (s *Service) Create(ctx context.Context, actorID string, req CreateBookingRequest) (*domain.Booking, error) {
	status := domain.BookingStatus(req.Status)
	if !status.Valid() {
		return nil, ErrValidation
	}

	if _, err := s.services.GetActiveByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if _, err := s.schedules.GetByID(ctx, req.ScheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	taken, err := s.bookings.ExistsActiveBySchedule(ctx, req.ScheduleID, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	b := &domain.Booking{
		UserID:     actorID,
		ServiceID:  req.ServiceID,
		ScheduleID: req.ScheduleID,
		Status:     status,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err, activeBookingIndex) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus moves the booking to any status; no ordering is enforced.
// Only the owner may do it.
func (s *Service) UpdateStatus(ctx context.Context, actorID, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}

	b, err := s.getOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, b.ID)
}

// Reschedule moves the booking to another schedule slot. The conflict check
// excludes the booking itself, so moving to the currently held slot is a
// no-op rather than a conflict.
func (s *Service) Reschedule(ctx context.Context, actorID, id, scheduleID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.schedules.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}

	taken, err := s.bookings.ExistsActiveBySchedule(ctx, scheduleID, b.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrConflict
	}

	if err := s.bookings.UpdateSchedule(ctx, b.ID, scheduleID); err != nil {
		if repository.IsUniqueViolation(err, activeBookingIndex) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.bookings.GetByID(ctx, b.ID)
}

// Delete soft-deletes the booking. Deleting an already deleted booking
// reports not found: the record is still fetched, but the scoped update
// touches no rows.
func (s *Service) Delete(ctx context.Context, actorID, id string) (bool, error) {
	if _, err := s.getOwned(ctx, actorID, id); err != nil {
		return false, err
	}

	rows, err := s.bookings.SoftDelete(ctx, id)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrNotFound
	}
	return true, nil
}

// Get returns the booking to its owner only.
func (s *Service) Get(ctx context.Context, actorID, id string) (*domain.Booking, error) {
	return s.getOwned(ctx, actorID, id)
}

// List returns the actor's own non-deleted bookings.
func (s *Service) List(ctx context.Context, actorID string, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	f.UserID = actorID
	return s.bookings.List(ctx, f)
}

// ListAll is open to any authenticated caller and may filter by an arbitrary
// userId; there is no ownership restriction on this path.
func (s *Service) ListAll(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	return s.bookings.List(ctx, f)
}

func (s *Service) getOwned(ctx context.Context, actorID, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	return b, nil
}
