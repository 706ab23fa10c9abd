package session

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"favorites/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	manager, err := NewManager(&config.Config{
		Session: &config.SessionConfig{
			Name:    "test_session",
			HashKey: "0123456789abcdef0123456789abcdef",
			MaxAge:  time.Hour,
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return manager
}

func roundTrip(t *testing.T, manager *Manager, mutate func(*Session)) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	sess := manager.Load(req)
	mutate(sess)
	require.NoError(t, sess.Save(req, rec))

	return rec.Result().Cookies()
}

func TestNewManager_RequiresConfig(t *testing.T) {
	_, err := NewManager(&config.Config{}, slog.Default())
	assert.Error(t, err)

	_, err = NewManager(&config.Config{Session: &config.SessionConfig{Name: "s"}}, slog.Default())
	assert.Error(t, err)
}

func TestManager_LoadWithoutCookieIsAnonymous(t *testing.T) {
	manager := newTestManager(t)

	sess := manager.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Zero(t, sess.ProfileID())
	assert.Empty(t, sess.XSRFToken())
}

func TestManager_RoundTrip(t *testing.T) {
	manager := newTestManager(t)

	cookies := roundTrip(t, manager, func(s *Session) {
		s.SetProfileID(9)
		s.SetXSRFToken("token")
	})
	require.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	sess := manager.Load(req)
	assert.Equal(t, int64(9), sess.ProfileID())
	assert.Equal(t, "token", sess.XSRFToken())
}

func TestManager_ClearKeepsToken(t *testing.T) {
	manager := newTestManager(t)

	cookies := roundTrip(t, manager, func(s *Session) {
		s.SetProfileID(9)
		s.SetXSRFToken("token")
		s.Clear()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	sess := manager.Load(req)
	assert.Zero(t, sess.ProfileID())
	assert.Equal(t, "token", sess.XSRFToken())
}

func TestManager_TamperedCookieIsAnonymous(t *testing.T) {
	manager := newTestManager(t)

	cookies := roundTrip(t, manager, func(s *Session) { s.SetProfileID(9) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookies[0].Name, Value: cookies[0].Value + "x"})

	sess := manager.Load(req)
	assert.Zero(t, sess.ProfileID())
}
