// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"favorites/internal/domain/entity"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/domain/repository"
	"favorites/internal/domain/service"
	"favorites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

// Get returns the profile with the given id, or nil.
func (srv *profileService) Get(ctx context.Context, id int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return profile, nil
}

// GetByUsername returns the profile with the given username, or nil.
func (srv *profileService) GetByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	return profile, nil
}

func (srv *profileService) ListByLocation(ctx context.Context, location string) ([]*entity.Profile, error) {
	profiles, err := srv.profileRepo.FindByLocation(ctx, location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by location")
	}

	return profiles, nil
}

// SignUp creates a profile with freshly salted credentials.
func (srv *profileService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Profile, error) {
	profile, err := entity.NewProfile(nil, input.Username, input.Location, nil)
	if err != nil {
		return nil, err
	}

	if err := srv.applyPassword(profile, input.Password); err != nil {
		return nil, err
	}

	if err := srv.profileRepo.Insert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.logger.InfoContext(ctx, "Profile created", "profileId", profile.IDValue())

	return profile, nil
}

// SignIn checks credentials. Unknown users and wrong passwords fail the same way.
func (srv *profileService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.Forbidden(usecase.MsgInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile by username")
	}

	if !profile.HasPassword() || !srv.hasher.Check(input.Password, profile.PasswordSalt(), profile.PasswordHash()) {
		srv.logger.WarnContext(ctx, "Rejected sign in", "profileId", profile.IDValue())

		return nil, domainerrors.Forbidden(usecase.MsgInvalidCredentials)
	}

	return profile, nil
}

// Update is allowed for the profile itself only. The owner is known from the id,
// so ownership is settled before the row is loaded.
func (srv *profileService) Update(ctx context.Context, session usecase.SessionContext, id int64, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := session.RequireOwner(id, usecase.MsgProfileNotAllowed); err != nil {
		return nil, err
	}

	profile, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := profile.SetUsername(input.Username); err != nil {
		return nil, err
	}
	if err := profile.SetLocation(input.Location); err != nil {
		return nil, err
	}
	if input.Password != nil {
		if err := srv.applyPassword(profile, *input.Password); err != nil {
			return nil, err
		}
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.NotFound(usecase.MsgProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func (srv *profileService) Delete(ctx context.Context, session usecase.SessionContext, id int64) error {
	if err := session.RequireOwner(id, usecase.MsgProfileNotAllowed); err != nil {
		return err
	}

	profile, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.profileRepo.Delete(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.NotFound(usecase.MsgProfileNotFound)
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	srv.logger.InfoContext(ctx, "Profile deleted", "profileId", id)

	return nil
}

func (srv *profileService) load(ctx context.Context, id int64) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.NotFound(usecase.MsgProfileNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// applyPassword sets a new salt and digest together.
func (srv *profileService) applyPassword(profile *entity.Profile, password string) error {
	if password == "" {
		return domainerrors.Empty("profile password is empty")
	}

	salt, err := srv.hasher.NewSalt()
	if err != nil {
		return errors.Wrap(err, "failed to generate salt")
	}

	digest, err := srv.hasher.Hash(password, salt)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return profile.SetPassword(digest, salt)
}
