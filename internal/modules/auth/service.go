package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"bookly/internal/cache"
	"bookly/internal/domain"
	"bookly/internal/pkg/jwt"
	"bookly/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenService interface {
	GenerateToken(userID string) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

// Service contains registration, login and identity resolution.
type Service struct {
	users    UserRepository
	bookings BookingRepository
	cache    cache.Store
	jwt      tokenService
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, bookings BookingRepository, store cache.Store, jwt tokenService) *Service {
	return &Service{
		users:    users,
		bookings: bookings,
		cache:    store,
		jwt:      jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

// ResolveIdentity verifies the bearer credential and resolves it to a user
// record through a cache-aside lookup. A cache hit may return a snapshot
// that is stale relative to later edits or deletion; the read path never
// invalidates, user mutations do.
func (s *Service) ResolveIdentity(ctx context.Context, credential string) (*domain.User, error) {
	claims, err := s.jwt.ValidateToken(credential)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if raw, err := s.cache.Get(ctx, claims.UserID); err == nil {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, err
		}
		return &user, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, user.ID, string(raw)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	// The identity cache holds a full snapshot; drop it so the next
	// resolution reads the updated record.
	if err := s.cache.Del(ctx, userID); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// DeleteAccount soft-deletes the user and all of their bookings, then evicts
// the identity cache entry.
func (s *Service) DeleteAccount(ctx context.Context, userID string) (bool, error) {
	if err := s.bookings.SoftDeleteByUser(ctx, userID); err != nil {
		return false, err
	}

	rows, err := s.users.SoftDelete(ctx, userID)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, ErrUserNotFound
	}

	if err := s.cache.Del(ctx, userID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) ListUsers(ctx context.Context, f repository.UserFilter) ([]domain.User, int64, error) {
	users, total, err := s.users.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}
