package middleware

import (
	deliverycontext "favorites/internal/delivery/context"
	"favorites/internal/infra/session"
	"favorites/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware loads the cookie session and derives the caller's SessionContext.
type SessionMiddleware struct {
	manager *session.Manager
}

func NewSessionMiddleware(manager *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{manager: manager}
}

func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := m.manager.Load(c.Request())
		deliverycontext.SetCookieSession(c, sess)
		deliverycontext.SetSession(c, usecase.NewSessionContext(sess.ProfileID()))

		return next(c)
	}
}
