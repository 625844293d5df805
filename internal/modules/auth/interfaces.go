package auth

import (
	"context"

	"bookly/internal/domain"
	"bookly/internal/repository"
)

// UserRepository defines the persistence operations the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	SoftDelete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context, f repository.UserFilter) ([]domain.User, int64, error)
}

// BookingRepository is the slice of the booking store needed when an account
// is deleted.
type BookingRepository interface {
	SoftDeleteByUser(ctx context.Context, userID string) error
}
