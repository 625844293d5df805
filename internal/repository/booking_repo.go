package repository

import (
	"context"
	"time"

	"bookly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type BookingFilter struct {
	UserID    string
	Status    string
	ServiceID string
	From      *time.Time
	To        *time.Time
	Pagination
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

// GetByID does not filter on the deleted flag; callers that care check it.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ExistsActiveBySchedule reports whether an active booking (not deleted,
// status != cancelled) holds the schedule. excludeID removes the booking
// being rescheduled from consideration.
func (r *BookingRepository) ExistsActiveBySchedule(ctx context.Context, scheduleID, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("schedule_id = ? AND status <> ? AND deleted = ?", scheduleID, domain.BookingCancelled, false)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *BookingRepository) UpdateSchedule(ctx context.Context, id, scheduleID string) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"schedule_id": scheduleID, "updated_at": time.Now()}).Error
}

// SoftDelete is scoped to not-yet-deleted rows; a repeat delete touches zero
// rows and the caller reports not found.
func (r *BookingRepository) SoftDelete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{"deleted": true, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

// SoftDeleteByUser marks all of a user's bookings deleted. Used when the
// account itself is deleted.
func (r *BookingRepository) SoftDeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("user_id = ? AND deleted = ?", userID, false).
		Updates(map[string]any{"deleted": true, "updated_at": time.Now()}).Error
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, int64, error) {
	_, perPage, offset := f.Normalized()

	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("deleted = ?", false)
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.From != nil && f.To != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", *f.From, *f.To)
	} else if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	err := q.Order("created_at").Offset(offset).Limit(perPage).Find(&bookings).Error
	return bookings, total, err
}
