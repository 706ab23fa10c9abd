// Package xsrf binds an anti-forgery token to the caller's session.
//
// Reads receive the token in a script-readable cookie; every state-changing
// request must echo it back in a header.
package xsrf

import (
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"favorites/config"
	deliverycontext "favorites/internal/delivery/context"
	domainerrors "favorites/internal/domain/errors"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	CookieName = "XSRF-TOKEN"
	HeaderName = "X-XSRF-TOKEN"

	tokenLength = 32
)

// ErrInvalidToken is returned by Verify for a missing or mismatched token.
var ErrInvalidToken = domainerrors.Forbidden("invalid XSRF token")

type Guard struct {
	secure bool
}

func NewGuard(cfg *config.Config) *Guard {
	return &Guard{secure: cfg != nil && cfg.Session != nil && cfg.Session.Secure}
}

// Issue makes sure the session holds a token and hands it to the client.
func (g *Guard) Issue(c echo.Context) (string, error) {
	sess := deliverycontext.GetCookieSession(c)
	if sess == nil {
		return "", errors.New("no session loaded for request")
	}

	token := sess.XSRFToken()
	if token == "" {
		raw := securecookie.GenerateRandomKey(tokenLength)
		if raw == nil {
			return "", errors.New("failed to generate XSRF token")
		}
		token = hex.EncodeToString(raw)
		sess.SetXSRFToken(token)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			return "", err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return token, nil
}

// Verify compares the request header with the session token.
func (g *Guard) Verify(c echo.Context) error {
	sess := deliverycontext.GetCookieSession(c)
	if sess == nil {
		return ErrInvalidToken
	}

	expected := sess.XSRFToken()
	supplied := c.Request().Header.Get(HeaderName)
	if expected == "" || supplied == "" {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) != 1 {
		return ErrInvalidToken
	}

	return nil
}
