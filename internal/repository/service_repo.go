package repository

import (
	"context"
	"strings"
	"time"

	"bookly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type ServiceFilter struct {
	Query string
	From  *time.Time
	To    *time.Time
	Pagination
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

// GetActiveByID returns the service only if it is not soft-deleted.
func (r *ServiceRepository) GetActiveByID(ctx context.Context, id string) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ? AND deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ExistsByName checks name uniqueness case-insensitively. excludeID removes
// the service being updated from consideration.
func (r *ServiceRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("LOWER(name) = ? AND deleted = ?", strings.ToLower(strings.TrimSpace(name)), false)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt > 0, err
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ? AND deleted = ?", s.ID, false).
		Updates(map[string]any{
			"name":        s.Name,
			"description": s.Description,
			"updated_at":  time.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *ServiceRepository) SoftDelete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{"deleted": true, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

func (r *ServiceRepository) List(ctx context.Context, f ServiceFilter) ([]domain.Service, int64, error) {
	_, perPage, offset := f.Normalized()

	q := r.db.WithContext(ctx).Model(&domain.Service{}).Where("deleted = ?", false)
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
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

	var services []domain.Service
	err := q.Order("created_at").Offset(offset).Limit(perPage).Find(&services).Error
	return services, total, err
}
