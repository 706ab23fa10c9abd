// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"favorites/internal/domain/entity"
	"favorites/internal/errors"
)

// ErrProfileNotFound is returned when a single-profile lookup matches nothing.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// Insert persists a new profile and assigns its id. The profile must not carry an id yet.
	Insert(ctx context.Context, profile *entity.Profile) error

	// Update writes every mutable column of an already persisted profile.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a persisted profile. Its products and favorites go with it.
	Delete(ctx context.Context, profile *entity.Profile) error

	// FindByID retrieves a profile by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.Profile, error)

	// FindByUsername retrieves a profile by its unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)

	// FindByLocation retrieves profiles whose location contains the given text, ordered by id.
	FindByLocation(ctx context.Context, location string) ([]*entity.Profile, error)
}
