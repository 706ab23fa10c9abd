package repository

import (
	"context"

	"favorites/internal/domain/entity"
	"favorites/internal/errors"
)

// ErrProductNotFound is returned when a single-product lookup matches nothing.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// Insert persists a new product and assigns its id.
	Insert(ctx context.Context, product *entity.Product) error

	// Update writes the mutable columns of a persisted product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a persisted product.
	Delete(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByProfileID retrieves every product posted by a profile.
	FindByProfileID(ctx context.Context, profileID int64) ([]*entity.Product, error)

	// FindByDescription retrieves products whose description contains the given text.
	FindByDescription(ctx context.Context, description string) ([]*entity.Product, error)

	// FindByPrice retrieves products listed at exactly the given price. The price must be positive.
	FindByPrice(ctx context.Context, price float64) ([]*entity.Product, error)

	// FindAll retrieves every product ordered by id.
	FindAll(ctx context.Context) ([]*entity.Product, error)
}
