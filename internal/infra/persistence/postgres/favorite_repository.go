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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Insert persists a new favorite. The composite primary key rejects duplicates.
func (repo *favoriteRepository) Insert(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)
	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		return translateWriteError(err, "Product is already a favorite", "failed to insert favorite")
	}

	return nil
}

// Update refreshes the favorite date. Nothing else about a favorite is mutable.
func (repo *favoriteRepository) Update(ctx context.Context, favorite *entity.Favorite) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("favorite_profile_id = ? AND favorite_product_id = ?", favorite.ProfileID(), favorite.ProductID()).
		Update("favorite_date", favorite.Date())
	if result.Error != nil {
		return domainerrors.DatabaseExecute(result.Error, "failed to update favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, favorite *entity.Favorite) error {
	result := repo.db.WithContext(ctx).
		Where("favorite_profile_id = ? AND favorite_product_id = ?", favorite.ProfileID(), favorite.ProductID()).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.DatabaseExecute(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) FindByCompositeKey(ctx context.Context, profileID, productID int64) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("favorite_profile_id = ? AND favorite_product_id = ?", profileID, productID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by composite key")
	}

	return toFavoriteDomain(&favoriteM)
}

func (repo *favoriteRepository) FindByProfileID(ctx context.Context, profileID int64) ([]*entity.Favorite, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("favorite_profile_id = ?", profileID), "failed to find favorites by profile")
}

func (repo *favoriteRepository) FindByProductID(ctx context.Context, productID int64) ([]*entity.Favorite, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("favorite_product_id = ?", productID), "failed to find favorites by product")
}

func (repo *favoriteRepository) FindAll(ctx context.Context) ([]*entity.Favorite, error) {
	return repo.findMany(repo.db.WithContext(ctx), "failed to find all favorites")
}

func (repo *favoriteRepository) findMany(query *gorm.DB, details string) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := query.
		Order("favorite_date DESC").
		Order("favorite_profile_id").
		Order("favorite_product_id").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, details)
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorite, err := toFavoriteDomain(favoriteM)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

func toFavoriteDomain(data *model.FavoriteModel) (*entity.Favorite, error) {
	favorite, err := entity.NewFavorite(data.ProfileID, data.ProductID, data.Date)
	if err != nil {
		return nil, domainerrors.Integrity("stored favorite failed validation", err)
	}

	return favorite, nil
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ProfileID: data.ProfileID(),
		ProductID: data.ProductID(),
		Date:      data.Date(),
	}
}
