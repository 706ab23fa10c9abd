// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Insert persists a new profile and writes the generated id back.
func (repo *profileRepository) Insert(ctx context.Context, profile *entity.Profile) error {
	if profile.ID() != nil {
		return domainerrors.Conflict("profile is already persisted")
	}

	profileM := fromProfileDomain(profile)
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return translateWriteError(err, "Profile username already taken", "failed to insert profile")
	}

	return errors.WithStack(profile.SetID(&profileM.ID))
}

// Update writes username, location, join date and credentials.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	if profile.ID() == nil {
		return domainerrors.NotFound("profile does not exist yet")
	}

	profileM := fromProfileDomain(profile)
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("profile_id = ?", profileM.ID).
		Updates(map[string]any{
			"profile_username":  profileM.Username,
			"profile_location":  profileM.Location,
			"profile_join_date": profileM.JoinDate,
			"profile_hash":      profileM.Hash,
			"profile_salt":      profileM.Salt,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "Profile username already taken", "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes a persisted profile.
func (repo *profileRepository) Delete(ctx context.Context, profile *entity.Profile) error {
	if profile.ID() == nil {
		return domainerrors.NotFound("profile does not exist yet")
	}

	result := repo.db.WithContext(ctx).
		Where("profile_id = ?", profile.IDValue()).
		Delete(&model.ProfileModel{})
	if result.Error != nil {
		return domainerrors.DatabaseExecute(result.Error, "failed to delete profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindByID retrieves a profile by its primary key.
func (repo *profileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	return repo.findOne(ctx, "profile_id = ?", id)
}

// FindByUsername retrieves a profile by its exact username.
func (repo *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return repo.findOne(ctx, "profile_username = ?", username)
}

// FindByLocation retrieves profiles whose location contains the given text.
func (repo *profileRepository) FindByLocation(ctx context.Context, location string) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where(`profile_location LIKE ? ESCAPE '\'`, "%"+escapeLike(location)+"%").
		Order("profile_id").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by location")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profile, err := toProfileDomain(profileM)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM)
}

// toProfileDomain rebuilds the entity, so a row that no longer validates is an integrity error.
func toProfileDomain(data *model.ProfileModel) (*entity.Profile, error) {
	id := data.ID
	profile, err := entity.NewProfile(&id, data.Username, data.Location, data.JoinDate)
	if err != nil {
		return nil, domainerrors.Integrity("stored profile failed validation", err)
	}

	if data.Hash != nil || data.Salt != nil {
		if err := profile.SetPassword(deref(data.Hash), deref(data.Salt)); err != nil {
			return nil, domainerrors.Integrity("stored profile credentials are incomplete", err)
		}
	}

	return profile, nil
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		ID:       data.IDValue(),
		Username: data.Username(),
		Location: data.Location(),
		JoinDate: data.JoinDate(),
		Hash:     nullable(data.PasswordHash()),
		Salt:     nullable(data.PasswordSalt()),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
