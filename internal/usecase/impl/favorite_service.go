package impl

import (
	"context"
	"log/slog"

	"favorites/internal/domain/entity"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/domain/repository"
	"favorites/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

// Get returns the favorite for the pair, or nil.
func (srv *favoriteService) Get(ctx context.Context, profileID, productID int64) (*entity.Favorite, error) {
	favorite, err := srv.favoriteRepo.FindByCompositeKey(ctx, profileID, productID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return favorite, nil
}

func (srv *favoriteService) ListByProfile(ctx context.Context, profileID int64) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByProfileID(ctx, profileID)

	return favorites, errors.Wrap(err, "failed to find favorites by profile")
}

func (srv *favoriteService) ListByProduct(ctx context.Context, productID int64) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByProductID(ctx, productID)

	return favorites, errors.Wrap(err, "failed to find favorites by product")
}

// Create marks a product as a favorite of the signed-in profile.
func (srv *favoriteService) Create(ctx context.Context, session usecase.SessionContext, input *usecase.CreateFavoriteInput) (*entity.Favorite, error) {
	current, err := session.RequireSignedIn(usecase.MsgFavoriteNotSignedIn)
	if err != nil {
		return nil, err
	}
	if input.ProfileID != current {
		return nil, domainerrors.Forbidden(usecase.MsgFavoriteOtherProfile)
	}

	var date any
	if input.Date != nil {
		date = *input.Date
	}

	favorite, err := entity.NewFavorite(input.ProfileID, input.ProductID, date)
	if err != nil {
		return nil, err
	}

	if err := srv.favoriteRepo.Insert(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to create favorite")
	}

	return favorite, nil
}

// Delete removes a favorite owned by the signed-in profile.
func (srv *favoriteService) Delete(ctx context.Context, session usecase.SessionContext, profileID, productID int64) error {
	if _, err := session.RequireSignedIn(usecase.MsgFavoriteDeleteDenied); err != nil {
		return err
	}

	favorite, err := srv.favoriteRepo.FindByCompositeKey(ctx, profileID, productID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return domainerrors.NotFound(usecase.MsgFavoriteNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find favorite")
	}

	if err := session.RequireOwner(favorite.ProfileID(), usecase.MsgFavoriteDeleteDenied); err != nil {
		return err
	}

	if err := srv.favoriteRepo.Delete(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.NotFound(usecase.MsgFavoriteNotFound)
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}
