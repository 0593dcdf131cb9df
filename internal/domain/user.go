package domain

import (
	"context"
	"time"
)

type User struct {
	ID        string     `json:"id"` // Identity provider UUID
	Name      string     `json:"name" validate:"required,min=2,max=80,valid_name"`
	Email     string     `json:"email" validate:"required,email"`
	PhotoURL  *string    `json:"photo_url,omitempty"`
	Bio       *string    `json:"bio,omitempty" validate:"omitempty,max=500,no_emoji"`
	Skills    []string   `json:"skills" validate:"max=20,dive,min=1,max=40"`
	Role      string     `json:"role"`
	JoinedAt  *time.Time `json:"joined_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ProfileView is the composed profile page payload. Optional fields of the
// underlying record are resolved to displayable values here so clients never
// have to special-case absence.
type ProfileView struct {
	User       User   `json:"user"`
	Initial    string `json:"initial"` // Fallback avatar letter when no photo is set
	Bio        string `json:"bio"`
	Skills     string `json:"skills"`
	JoinedDate string `json:"joined_date"`
	Jobs       []Job  `json:"jobs"`
	CanContact bool   `json:"can_contact"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePhotoURL(ctx context.Context, id string, photoURL string) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, subjectID string) (*ProfileView, error)
	UpdateProfile(ctx context.Context, user *User) error
	UpdatePhoto(ctx context.Context, userID string, photoURL string) error
}
