package repository

import (
	"context"
	"strings"
	"time"

	"bookly/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type UserFilter struct {
	Query string
	From  *time.Time
	To    *time.Time
	Pagination
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByID does not filter on the deleted flag: the identity path accepts a
// stale snapshot of a since-deleted user, matching the cache semantics.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	email = strings.ToLower(strings.TrimSpace(email))
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt > 0, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", u.ID).Updates(map[string]any{
		"name":       u.Name,
		"email":      strings.ToLower(strings.TrimSpace(u.Email)),
		"updated_at": time.Now(),
	}).Error
}

// SoftDelete marks the user deleted. Returns the number of rows touched so
// callers can tell a repeat delete from a first one.
func (r *UserRepository) SoftDelete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]any{"deleted": true, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]domain.User, int64, error) {
	_, perPage, offset := f.Normalized()

	q := r.db.WithContext(ctx).Model(&domain.User{})
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
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

	var users []domain.User
	err := q.Order("created_at").Offset(offset).Limit(perPage).Find(&users).Error
	return users, total, err
}
