package repository

import (
	"context"

	"favorites/internal/domain/entity"
	"favorites/internal/errors"
)

// ErrFavoriteNotFound is returned when no favorite exists for a composite key.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// Insert persists a new favorite. A second favorite for the same pair is a conflict.
	Insert(ctx context.Context, favorite *entity.Favorite) error

	// Update refreshes the favorite date.
	Update(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite identified by its composite key.
	Delete(ctx context.Context, favorite *entity.Favorite) error

	// FindByCompositeKey retrieves the favorite linking a profile to a product.
	FindByCompositeKey(ctx context.Context, profileID, productID int64) (*entity.Favorite, error)

	// FindByProfileID retrieves the favorites of a profile, newest first.
	FindByProfileID(ctx context.Context, profileID int64) ([]*entity.Favorite, error)

	// FindByProductID retrieves the favorites pointing at a product, newest first.
	FindByProductID(ctx context.Context, productID int64) ([]*entity.Favorite, error)

	// FindAll retrieves every favorite, newest first.
	FindAll(ctx context.Context) ([]*entity.Favorite, error)
}
