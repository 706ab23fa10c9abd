package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"favorites/config"
	"favorites/internal/delivery/http/middleware"
	"favorites/internal/delivery/http/validator"
	"favorites/internal/delivery/http/xsrf"
	"favorites/internal/infra/session"
	mockRepo "favorites/internal/mocks/repository"
	mockSvc "favorites/internal/mocks/service"
	"favorites/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testXSRFToken = "5f0c2b1e9d8a7c6b5f0c2b1e9d8a7c6b"

type testEnv struct {
	e            *echo.Echo
	manager      *session.Manager
	profileRepo  *mockRepo.MockProfileRepository
	productRepo  *mockRepo.MockProductRepository
	favoriteRepo *mockRepo.MockFavoriteRepository
	hasher       *mockSvc.MockPasswordHasher
}

// newTestEnv wires the real use cases over mocked repositories. Mocks fail
// the test on any call that was not expected.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Session: &config.SessionConfig{
			Name:    "favorites_session",
			HashKey: "0123456789abcdef0123456789abcdef",
			MaxAge:  time.Hour,
		},
	}

	manager, err := session.NewManager(cfg, logger)
	require.NoError(t, err)
	guard := xsrf.NewGuard(cfg)

	env := &testEnv{
		manager:      manager,
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
	}

	profileUC := impl.NewProfileService(impl.ProfileServiceParams{
		ProfileRepo: env.profileRepo,
		Hasher:      env.hasher,
		Logger:      logger,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: env.productRepo,
		Logger:      logger,
	})
	favoriteUC := impl.NewFavoriteService(impl.FavoriteServiceParams{
		FavoriteRepo: env.favoriteRepo,
		Logger:       logger,
	})

	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Guard: guard, Logger: logger})
	productHandler := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Guard: guard, Logger: logger})
	favoriteHandler := NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC, Guard: guard, Logger: logger})
	accountHandler := NewAccountHandler(AccountHandlerParams{ProfileUC: profileUC, Guard: guard, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	api := e.Group("/api", middleware.NewSessionMiddleware(manager).Load)
	api.Any("/profile", profileHandler.Handle)
	api.Any("/product", productHandler.Handle)
	api.Any("/favorite", favoriteHandler.Handle)
	api.Any("/signin", accountHandler.SignIn)
	api.Any("/signout", accountHandler.SignOut)
	env.e = e

	return env
}

type requestOptions struct {
	profileID int64  // signed-in profile, zero for anonymous
	xsrf      bool   // send the session's anti-forgery token
	override  string // X-HTTP-Method value
}

// sessionCookie mints the cookie a browser would hold after signing in and
// fetching a token.
func (env *testEnv) sessionCookie(t *testing.T, profileID int64) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess := env.manager.Load(req)
	if profileID > 0 {
		sess.SetProfileID(profileID)
	}
	sess.SetXSRFToken(testXSRFToken)
	require.NoError(t, sess.Save(req, rec))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return cookies[0]
}

func (env *testEnv) serve(t *testing.T, method, target, body string, opts requestOptions) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.AddCookie(env.sessionCookie(t, opts.profileID))
	if opts.xsrf {
		req.Header.Set(xsrf.HeaderName, testXSRFToken)
	}
	if opts.override != "" {
		req.Header.Set(HeaderMethodOverride, opts.override)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)

	return rec
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var reply map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))

	return reply
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}
