package repository

import (
	"context"
	"time"

	"bookly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type ScheduleFilter struct {
	ServiceID string
	StartTime *time.Time
	EndTime   *time.Time
	From      *time.Time
	To        *time.Time
	Pagination
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	var s domain.Schedule
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ExistsOverlapping reports whether another schedule of the same service sits
// inside the candidate range. The test is containment (existing.start >=
// start AND existing.end <= end), not full interval intersection; partial
// overlaps pass undetected. Kept exactly as the legacy behavior.
func (r *ScheduleRepository) ExistsOverlapping(ctx context.Context, serviceID string, start, end time.Time, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("service_id = ? AND start_time >= ? AND end_time <= ?", serviceID, start, end)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

// Update replaces the time fields and service reference wholesale.
func (r *ScheduleRepository) Update(ctx context.Context, s *domain.Schedule) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Schedule{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"service_id": s.ServiceID,
			"start_time": s.StartTime,
			"end_time":   s.EndTime,
			"updated_at": time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

// Delete removes the row. Schedules have no soft-delete; dependent bookings
// are not cascaded.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Schedule{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

func (r *ScheduleRepository) List(ctx context.Context, f ScheduleFilter) ([]domain.Schedule, int64, error) {
	_, perPage, offset := f.Normalized()

	q := r.db.WithContext(ctx).Model(&domain.Schedule{})
	if f.ServiceID != "" {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.StartTime != nil && f.EndTime != nil {
		q = q.Where("start_time >= ? AND end_time <= ?", *f.StartTime, *f.EndTime)
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

	var schedules []domain.Schedule
	err := q.Order("start_time").Offset(offset).Limit(perPage).Find(&schedules).Error
	return schedules, total, err
}
