package handler

import (
	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/errors"

	"github.com/labstack/echo/v4"
)

// startSession signs the caller in as profileID.
func startSession(c echo.Context, profileID int64) error {
	sess := deliverycontext.GetCookieSession(c)
	if sess == nil {
		return errors.New("no session loaded for request")
	}
	sess.SetProfileID(profileID)

	return sess.Save(c.Request(), c.Response())
}

// endSession signs the caller out.
func endSession(c echo.Context) error {
	sess := deliverycontext.GetCookieSession(c)
	if sess == nil {
		return errors.New("no session loaded for request")
	}
	sess.Clear()

	return sess.Save(c.Request(), c.Response())
}
