// Package session keeps the caller's identity and anti-forgery token in a
// signed cookie.
package session

import (
	"log/slog"
	"net/http"

	"favorites/config"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	keyProfileID = "profileId"
	keyXSRFToken = "xsrfToken"
)

// Manager loads and saves cookie sessions.
type Manager struct {
	store  *sessions.CookieStore
	name   string
	logger *slog.Logger
}

// NewManager builds a cookie store from the session section of the config.
func NewManager(cfg *config.Config, logger *slog.Logger) (*Manager, error) {
	if cfg == nil || cfg.Session == nil {
		return nil, errors.New("session config is required")
	}
	if cfg.Session.HashKey == "" {
		return nil, errors.New("session hash key is required")
	}

	keys := [][]byte{[]byte(cfg.Session.HashKey)}
	if cfg.Session.BlockKey != "" {
		keys = append(keys, []byte(cfg.Session.BlockKey))
	}

	store := sessions.NewCookieStore(keys...)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(cfg.Session.MaxAge.Seconds()))

	return &Manager{
		store:  store,
		name:   cfg.Session.Name,
		logger: logger,
	}, nil
}

// Load returns the session carried by r. A missing, expired or tampered
// cookie yields a fresh anonymous session.
func (m *Manager) Load(r *http.Request) *Session {
	raw, err := m.store.Get(r, m.name)
	if err != nil {
		m.logger.DebugContext(r.Context(), "Discarding unreadable session cookie", slog.Any("error", err))
		raw = sessions.NewSession(m.store, m.name)
		opts := *m.store.Options
		raw.Options = &opts
		raw.IsNew = true
	}

	return &Session{raw: raw}
}

// Session is one request's view of the cookie session.
type Session struct {
	raw *sessions.Session
}

// ProfileID returns the signed-in profile, or zero.
func (s *Session) ProfileID() int64 {
	id, _ := s.raw.Values[keyProfileID].(int64)

	return id
}

func (s *Session) SetProfileID(id int64) {
	s.raw.Values[keyProfileID] = id
}

func (s *Session) XSRFToken() string {
	token, _ := s.raw.Values[keyXSRFToken].(string)

	return token
}

func (s *Session) SetXSRFToken(token string) {
	s.raw.Values[keyXSRFToken] = token
}

// Clear signs the caller out. The anti-forgery token survives.
func (s *Session) Clear() {
	delete(s.raw.Values, keyProfileID)
}

// Save writes the session cookie. It must run before the response body.
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	return errors.Wrap(s.raw.Save(r, w), "failed to save session")
}
