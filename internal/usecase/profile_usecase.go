package usecase

import (
	"context"

	"favorites/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
// Single lookups return (nil, nil) when nothing matches.
type ProfileUsecase interface {
	Get(ctx context.Context, id int64) (*entity.Profile, error)
	GetByUsername(ctx context.Context, username string) (*entity.Profile, error)
	ListByLocation(ctx context.Context, location string) ([]*entity.Profile, error)
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Profile, error)
	SignIn(ctx context.Context, input *SignInInput) (*entity.Profile, error)
	Update(ctx context.Context, session SessionContext, id int64, input *UpdateProfileInput) (*entity.Profile, error)
	Delete(ctx context.Context, session SessionContext, id int64) error
}

// --- Input DTOs ---

// SignUpInput defines the data required to register a profile.
type SignUpInput struct {
	Username string
	Location string
	Password string
}

// SignInInput defines the credentials for signing in.
type SignInInput struct {
	Username string
	Password string
}

// UpdateProfileInput replaces username and location. A nil Password keeps the current credentials.
type UpdateProfileInput struct {
	Username string
	Location string
	Password *string
}
