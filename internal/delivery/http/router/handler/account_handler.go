package handler

import (
	"log/slog"

	"favorites/internal/delivery/http/response"
	"favorites/internal/delivery/http/xsrf"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var signInMissing = map[string]string{
	"profileUsername": "No profile username.",
	"profilePassword": "No profile password.",
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Guard     *xsrf.Guard
	Logger    *slog.Logger
}

// AccountHandler signs callers in and out.
type AccountHandler struct {
	profileUC usecase.ProfileUsecase
	guard     *xsrf.Guard
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		profileUC: params.ProfileUC,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

type signInRequest struct {
	Username string `json:"profileUsername" validate:"required"`
	Password string `json:"profilePassword" validate:"required"`
}

// SignIn handles POST /api/signin.
func (h *AccountHandler) SignIn(c echo.Context) error {
	return dispatch(c, h.guard, methodHandlers{post: h.signIn})
}

// SignOut handles POST /api/signout.
func (h *AccountHandler) SignOut(c echo.Context) error {
	return dispatch(c, h.guard, methodHandlers{post: h.signOut})
}

func (h *AccountHandler) signIn(c echo.Context) error {
	var req signInRequest
	if err := bindBody(c, &req, signInMissing); err != nil {
		return err
	}

	profile, err := h.profileUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if err := startSession(c, profile.IDValue()); err != nil {
		return err
	}

	return response.MessageWithData(c, "Signed in OK", profile)
}

func (h *AccountHandler) signOut(c echo.Context) error {
	if err := endSession(c); err != nil {
		return err
	}

	return response.Message(c, "Signed out OK")
}
