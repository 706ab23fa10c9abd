package handler

import (
	"log/slog"

	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/delivery/http/response"
	"favorites/internal/delivery/http/xsrf"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var profileMissing = map[string]string{
	"profileUsername": "No profile username.",
	"profileLocation": "No profile location.",
	"profilePassword": "No profile password.",
}

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Guard     *xsrf.Guard
	Logger    *slog.Logger
}

// ProfileHandler serves /api/profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	guard     *xsrf.Guard
	logger    *slog.Logger
	lookups   []lookupRule
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	h := &ProfileHandler{
		profileUC: params.ProfileUC,
		guard:     params.Guard,
		logger:    params.Logger,
	}
	h.lookups = []lookupRule{
		{when: hasQuery("id"), lookup: h.byID},
		{when: hasQuery("username", "profileUserName"), lookup: h.byUsername},
		{when: hasQuery("location", "profileLocation"), lookup: h.byLocation},
	}

	return h
}

type signUpRequest struct {
	Username string `json:"profileUsername" validate:"required"`
	Location string `json:"profileLocation" validate:"required"`
	Password string `json:"profilePassword" validate:"required"`
}

type updateProfileRequest struct {
	Username string `json:"profileUsername" validate:"required"`
	Location string `json:"profileLocation" validate:"required"`
	Password string `json:"profilePassword"`
}

func (h *ProfileHandler) Handle(c echo.Context) error {
	return dispatch(c, h.guard, methodHandlers{
		get:    h.get,
		post:   h.signUp,
		put:    h.update,
		delete: h.delete,
	})
}

func (h *ProfileHandler) get(c echo.Context) error {
	data, err := firstMatch(c, h.lookups, func(echo.Context) (any, error) { return nil, nil })
	if err != nil {
		return err
	}

	return response.Data(c, data)
}

func (h *ProfileHandler) byID(c echo.Context) (any, error) {
	id, _, err := queryInt64(c, "id")
	if err != nil || id <= 0 {
		return nil, err
	}

	return h.profileUC.Get(c.Request().Context(), id)
}

func (h *ProfileHandler) byUsername(c echo.Context) (any, error) {
	return h.profileUC.GetByUsername(c.Request().Context(), queryValue(c, "username", "profileUserName"))
}

func (h *ProfileHandler) byLocation(c echo.Context) (any, error) {
	return h.profileUC.ListByLocation(c.Request().Context(), queryValue(c, "location", "profileLocation"))
}

// signUp creates a profile and signs the caller in as it.
func (h *ProfileHandler) signUp(c echo.Context) error {
	var req signUpRequest
	if err := bindBody(c, &req, profileMissing); err != nil {
		return err
	}

	profile, err := h.profileUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Username: req.Username,
		Location: req.Location,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	if err := startSession(c, profile.IDValue()); err != nil {
		return err
	}

	return response.Message(c, "Profile created OK")
}

func (h *ProfileHandler) update(c echo.Context) error {
	id, err := requireQueryID(c)
	if err != nil {
		return err
	}

	session := deliverycontext.GetSession(c)
	if err := session.RequireOwner(id, usecase.MsgProfileNotAllowed); err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindBody(c, &req, profileMissing); err != nil {
		return err
	}

	input := &usecase.UpdateProfileInput{
		Username: req.Username,
		Location: req.Location,
	}
	if req.Password != "" {
		input.Password = &req.Password
	}

	if _, err := h.profileUC.Update(c.Request().Context(), session, id, input); err != nil {
		return err
	}

	return response.Message(c, "Profile updated OK")
}

func (h *ProfileHandler) delete(c echo.Context) error {
	id, err := requireQueryID(c)
	if err != nil {
		return err
	}

	if err := h.profileUC.Delete(c.Request().Context(), deliverycontext.GetSession(c), id); err != nil {
		return err
	}

	if err := endSession(c); err != nil {
		return err
	}

	return response.Message(c, "Profile deleted OK")
}
