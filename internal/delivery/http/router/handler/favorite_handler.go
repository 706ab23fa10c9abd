package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/delivery/http/response"
	"favorites/internal/delivery/http/xsrf"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgNoFavoriteProfile = "No Profile linked to the Favorite"
	msgNoFavoriteProduct = "No Product linked to the Favorite"
	msgBadFavoriteSearch = "incorrect search parameters"
)

var favoriteMissing = map[string]string{
	"favoriteProfileId": msgNoFavoriteProfile,
	"favoriteProductId": msgNoFavoriteProduct,
}

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Guard      *xsrf.Guard
	Logger     *slog.Logger
}

// FavoriteHandler serves /api/favorite.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	guard      *xsrf.Guard
	logger     *slog.Logger
	lookups    []lookupRule
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	h := &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		guard:      params.Guard,
		logger:     params.Logger,
	}
	h.lookups = []lookupRule{
		{when: hasIntQuery("favoriteProfileId", "favoriteProductId"), lookup: h.byKey},
		{when: hasIntQuery("favoriteProfileId"), lookup: h.byProfile},
		{when: hasIntQuery("favoriteProductId"), lookup: h.byProduct},
	}

	return h
}

type createFavoriteRequest struct {
	ProfileID int64  `json:"favoriteProfileId" validate:"required"`
	ProductID int64  `json:"favoriteProductId" validate:"required"`
	Date      string `json:"favoriteDate"`
}

type favoriteKeyRequest struct {
	ProfileID int64 `json:"favoriteProfileId"`
	ProductID int64 `json:"favoriteProductId"`
}

func (h *FavoriteHandler) Handle(c echo.Context) error {
	return dispatch(c, h.guard, methodHandlers{
		get:    h.get,
		post:   h.create,
		put:    h.remove,
		delete: h.remove,
	})
}

func (h *FavoriteHandler) get(c echo.Context) error {
	data, err := firstMatch(c, h.lookups, func(echo.Context) (any, error) {
		return nil, domainerrors.NotFound(msgBadFavoriteSearch)
	})
	if err != nil {
		return err
	}

	return response.Data(c, data)
}

func (h *FavoriteHandler) byKey(c echo.Context) (any, error) {
	profileID, _, err := queryInt64(c, "favoriteProfileId")
	if err != nil {
		return nil, err
	}
	productID, _, err := queryInt64(c, "favoriteProductId")
	if err != nil {
		return nil, err
	}

	return h.favoriteUC.Get(c.Request().Context(), profileID, productID)
}

func (h *FavoriteHandler) byProfile(c echo.Context) (any, error) {
	profileID, _, err := queryInt64(c, "favoriteProfileId")
	if err != nil {
		return nil, err
	}

	return h.favoriteUC.ListByProfile(c.Request().Context(), profileID)
}

func (h *FavoriteHandler) byProduct(c echo.Context) (any, error) {
	productID, _, err := queryInt64(c, "favoriteProductId")
	if err != nil {
		return nil, err
	}

	return h.favoriteUC.ListByProduct(c.Request().Context(), productID)
}

func (h *FavoriteHandler) create(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if _, err := session.RequireSignedIn(usecase.MsgFavoriteNotSignedIn); err != nil {
		return err
	}

	var req createFavoriteRequest
	if err := bindBody(c, &req, favoriteMissing); err != nil {
		return err
	}

	input := &usecase.CreateFavoriteInput{
		ProfileID: req.ProfileID,
		ProductID: req.ProductID,
	}
	if req.Date != "" {
		input.Date = &req.Date
	}

	if _, err := h.favoriteUC.Create(c.Request().Context(), session, input); err != nil {
		return err
	}

	return response.Message(c, "Successfully marked product a favorite")
}

// remove deletes by composite key. PUT reads the key from the body; DELETE
// also accepts it in the query.
func (h *FavoriteHandler) remove(c echo.Context) error {
	key, err := h.compositeKey(c)
	if err != nil {
		return err
	}

	if err := h.favoriteUC.Delete(c.Request().Context(), deliverycontext.GetSession(c), key.ProfileID, key.ProductID); err != nil {
		return err
	}

	return response.Message(c, "Favorite successfully deleted")
}

func (h *FavoriteHandler) compositeKey(c echo.Context) (favoriteKeyRequest, error) {
	var key favoriteKeyRequest
	if err := bindBody(c, &key, nil); err != nil {
		return key, err
	}

	if resolveMethod(c) == http.MethodDelete {
		if key.ProfileID == 0 {
			id, _, err := queryInt64(c, "favoriteProfileId")
			if err != nil {
				return key, err
			}
			key.ProfileID = id
		}
		if key.ProductID == 0 {
			id, _, err := queryInt64(c, "favoriteProductId")
			if err != nil {
				return key, err
			}
			key.ProductID = id
		}
	}

	switch {
	case key.ProfileID <= 0:
		return key, domainerrors.MissingField(msgNoFavoriteProfile)
	case key.ProductID <= 0:
		return key, domainerrors.MissingField(msgNoFavoriteProduct)
	}

	return key, nil
}
