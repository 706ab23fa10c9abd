package usecase

import (
	"context"

	"favorites/internal/domain/entity"
)

// FavoriteUsecase defines the interface for favorite-related business operations.
type FavoriteUsecase interface {
	Get(ctx context.Context, profileID, productID int64) (*entity.Favorite, error)
	ListByProfile(ctx context.Context, profileID int64) ([]*entity.Favorite, error)
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Favorite, error)
	Create(ctx context.Context, session SessionContext, input *CreateFavoriteInput) (*entity.Favorite, error)
	Delete(ctx context.Context, session SessionContext, profileID, productID int64) error
}

// CreateFavoriteInput links the caller to a product. A nil Date means now.
type CreateFavoriteInput struct {
	ProfileID int64
	ProductID int64
	Date      *string
}
