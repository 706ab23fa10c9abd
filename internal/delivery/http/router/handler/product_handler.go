package handler

import (
	"log/slog"
	"strconv"

	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/delivery/http/response"
	"favorites/internal/delivery/http/xsrf"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var productMissing = map[string]string{
	"productDescription": "No product description.",
	"productProfileId":   "No Profile ID.",
	"productPrice":       "No product price.",
}

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Guard     *xsrf.Guard
	Logger    *slog.Logger
}

// ProductHandler serves /api/product.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	guard     *xsrf.Guard
	logger    *slog.Logger
	lookups   []lookupRule
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	h := &ProductHandler{
		productUC: params.ProductUC,
		guard:     params.Guard,
		logger:    params.Logger,
	}
	h.lookups = []lookupRule{
		{when: hasQuery("id"), lookup: h.byID},
		{when: hasQuery("productProfileId"), lookup: h.byProfile},
		{when: hasQuery("productDescription"), lookup: h.byDescription},
		{when: hasQuery("productPrice"), lookup: h.byPrice},
	}

	return h
}

// Field order decides which missing field is reported first.
type createProductRequest struct {
	Description string  `json:"productDescription" validate:"required"`
	ProfileID   int64   `json:"productProfileId" validate:"required"`
	Price       float64 `json:"productPrice" validate:"required"`
}

type updateProductRequest struct {
	Description string  `json:"productDescription" validate:"required"`
	Price       float64 `json:"productPrice" validate:"required"`
}

func (h *ProductHandler) Handle(c echo.Context) error {
	return dispatch(c, h.guard, methodHandlers{
		get:    h.get,
		post:   h.create,
		put:    h.update,
		delete: h.delete,
	})
}

func (h *ProductHandler) get(c echo.Context) error {
	data, err := firstMatch(c, h.lookups, h.all)
	if err != nil {
		return err
	}

	return response.Data(c, data)
}

func (h *ProductHandler) byID(c echo.Context) (any, error) {
	id, _, err := queryInt64(c, "id")
	if err != nil || id <= 0 {
		return nil, err
	}

	return h.productUC.Get(c.Request().Context(), id)
}

func (h *ProductHandler) byProfile(c echo.Context) (any, error) {
	profileID, _, err := queryInt64(c, "productProfileId")
	if err != nil {
		return nil, err
	}

	return h.productUC.ListByProfile(c.Request().Context(), profileID)
}

func (h *ProductHandler) byDescription(c echo.Context) (any, error) {
	return h.productUC.ListByDescription(c.Request().Context(), queryValue(c, "productDescription"))
}

func (h *ProductHandler) byPrice(c echo.Context) (any, error) {
	price, err := strconv.ParseFloat(queryValue(c, "productPrice"), 64)
	if err != nil {
		return nil, domainerrors.InvalidFormat("productPrice must be a number")
	}

	return h.productUC.ListByPrice(c.Request().Context(), price)
}

func (h *ProductHandler) all(c echo.Context) (any, error) {
	return h.productUC.ListAll(c.Request().Context())
}

func (h *ProductHandler) create(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if _, err := session.RequireSignedIn(usecase.MsgProductNotSignedIn); err != nil {
		return err
	}

	var req createProductRequest
	if err := bindBody(c, &req, productMissing); err != nil {
		return err
	}

	if _, err := h.productUC.Create(c.Request().Context(), session, &usecase.CreateProductInput{
		ProfileID:   req.ProfileID,
		Description: req.Description,
		Price:       req.Price,
	}); err != nil {
		return err
	}

	return response.Message(c, "Product created OK")
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := requireQueryID(c)
	if err != nil {
		return err
	}

	// Ownership is settled before the body is looked at.
	session := deliverycontext.GetSession(c)
	if _, err := h.productUC.Editable(c.Request().Context(), session, id); err != nil {
		return err
	}

	var req updateProductRequest
	if err := bindBody(c, &req, productMissing); err != nil {
		return err
	}

	if _, err := h.productUC.Update(c.Request().Context(), session, id, &usecase.UpdateProductInput{
		Description: req.Description,
		Price:       req.Price,
	}); err != nil {
		return err
	}

	return response.Message(c, "Product updated OK")
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := requireQueryID(c)
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), deliverycontext.GetSession(c), id); err != nil {
		return err
	}

	return response.Message(c, "Product deleted OK")
}
