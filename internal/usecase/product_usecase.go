package usecase

import (
	"context"

	"favorites/internal/domain/entity"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	Get(ctx context.Context, id int64) (*entity.Product, error)
	ListByProfile(ctx context.Context, profileID int64) ([]*entity.Product, error)
	ListByDescription(ctx context.Context, description string) ([]*entity.Product, error)
	ListByPrice(ctx context.Context, price float64) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, session SessionContext, input *CreateProductInput) (*entity.Product, error)
	// Editable returns the product when the caller may change it.
	Editable(ctx context.Context, session SessionContext, id int64) (*entity.Product, error)
	Update(ctx context.Context, session SessionContext, id int64, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, session SessionContext, id int64) error
}

// CreateProductInput defines a new listing. ProfileID must be the caller.
type CreateProductInput struct {
	ProfileID   int64
	Description string
	Price       float64
}

// UpdateProductInput replaces the mutable fields of a listing.
type UpdateProductInput struct {
	Description string
	Price       float64
}
