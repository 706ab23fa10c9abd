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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// Get returns the product with the given id, or nil.
func (srv *productService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

func (srv *productService) ListByProfile(ctx context.Context, profileID int64) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByProfileID(ctx, profileID)

	return products, errors.Wrap(err, "failed to find products by profile")
}

func (srv *productService) ListByDescription(ctx context.Context, description string) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByDescription(ctx, description)

	return products, errors.Wrap(err, "failed to find products by description")
}

func (srv *productService) ListByPrice(ctx context.Context, price float64) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByPrice(ctx, price)

	return products, errors.Wrap(err, "failed to find products by price")
}

func (srv *productService) ListAll(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)

	return products, errors.Wrap(err, "failed to find products")
}

// Create posts a product for the signed-in profile.
func (srv *productService) Create(ctx context.Context, session usecase.SessionContext, input *usecase.CreateProductInput) (*entity.Product, error) {
	current, err := session.RequireSignedIn(usecase.MsgProductNotSignedIn)
	if err != nil {
		return nil, err
	}
	if input.ProfileID != current {
		return nil, domainerrors.Forbidden(usecase.MsgProductOtherProfile)
	}

	product, err := entity.NewProduct(nil, input.ProfileID, input.Description, input.Price, nil)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Insert(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.InfoContext(ctx, "Product created", "productId", product.IDValue(), "profileId", current)

	return product, nil
}

// Editable loads the product first so a missing product reports 404 before ownership is checked.
func (srv *productService) Editable(ctx context.Context, session usecase.SessionContext, id int64) (*entity.Product, error) {
	if _, err := session.RequireSignedIn(usecase.MsgProductEditDenied); err != nil {
		return nil, err
	}

	product, err := srv.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.RequireOwner(product.ProfileID(), usecase.MsgProductEditDenied); err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) Update(ctx context.Context, session usecase.SessionContext, id int64, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.Editable(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := product.SetDescription(input.Description); err != nil {
		return nil, err
	}
	if err := product.SetPrice(input.Price); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.NotFound(usecase.MsgProductNotFound)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, session usecase.SessionContext, id int64) error {
	if _, err := session.RequireSignedIn(usecase.MsgProductDeleteDenied); err != nil {
		return err
	}

	product, err := srv.load(ctx, id)
	if err != nil {
		return err
	}

	if err := session.RequireOwner(product.ProfileID(), usecase.MsgProductDeleteDenied); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.NotFound(usecase.MsgProductNotFound)
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (srv *productService) load(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.NotFound(usecase.MsgProductNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
