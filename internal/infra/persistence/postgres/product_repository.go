package postgres

import (
	"context"

	"favorites/internal/domain/entity"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/domain/repository"
	"favorites/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (repo *productRepository) Insert(ctx context.Context, product *entity.Product) error {
	if product.ID() != nil {
		return domainerrors.Conflict("product is already persisted")
	}

	productM := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return translateWriteError(err, "product already exists", "failed to insert product")
	}

	return errors.WithStack(product.SetID(&productM.ID))
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	if product.ID() == nil {
		return domainerrors.NotFound("product does not exist yet")
	}

	productM := fromProductDomain(product)
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("product_id = ?", productM.ID).
		Updates(map[string]any{
			"product_profile_id":  productM.ProfileID,
			"product_description": productM.Description,
			"product_price":       productM.Price,
			"product_post_date":   productM.PostDate,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "product already exists", "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, product *entity.Product) error {
	if product.ID() == nil {
		return domainerrors.NotFound("product does not exist yet")
	}

	result := repo.db.WithContext(ctx).
		Where("product_id = ?", product.IDValue()).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.DatabaseExecute(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

func (repo *productRepository) FindByProfileID(ctx context.Context, profileID int64) ([]*entity.Product, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("product_profile_id = ?", profileID), "failed to find products by profile")
}

func (repo *productRepository) FindByDescription(ctx context.Context, description string) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Where(`product_description LIKE ? ESCAPE '\'`, "%"+escapeLike(description)+"%")

	return repo.findMany(query, "failed to find products by description")
}

func (repo *productRepository) FindByPrice(ctx context.Context, price float64) ([]*entity.Product, error) {
	if price <= 0 {
		return nil, domainerrors.OutOfRange("product price must be positive")
	}

	return repo.findMany(repo.db.WithContext(ctx).Where("product_price = ?", price), "failed to find products by price")
}

func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.findMany(repo.db.WithContext(ctx), "failed to find all products")
}

func (repo *productRepository) findMany(query *gorm.DB, details string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := query.Order("product_id").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, details)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	id := data.ID
	product, err := entity.NewProduct(&id, data.ProfileID, data.Description, data.Price, data.PostDate)
	if err != nil {
		return nil, domainerrors.Integrity("stored product failed validation", err)
	}

	return product, nil
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.IDValue(),
		ProfileID:   data.ProfileID(),
		Description: data.Description(),
		Price:       data.Price(),
		PostDate:    data.PostDate(),
	}
}
