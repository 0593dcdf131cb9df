package usecase

import (
	"context"
	"strings"
	"time"

	"go-talenthub-backend/internal/domain"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists mirrors the identity provider's subject into the local
// users table. Called on first authenticated request after login; idempotent
// for returning users.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if existing != nil && err == nil {
		return nil // Already mirrored
	}
	if err != nil && err != domain.ErrNotFound {
		return err
	}

	if user.Role == "" {
		user.Role = "member"
	}
	if user.Name == "" {
		// Provisional display name until the user edits their profile.
		user.Name = strings.SplitN(user.Email, "@", 2)[0]
	}
	now := time.Now()
	user.JoinedAt = &now
	user.CreatedAt = now
	user.UpdatedAt = now

	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
