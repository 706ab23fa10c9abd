// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	domainerrors "favorites/internal/domain/errors"
)

// SessionContext is the identity of the caller for a single request.
// The zero value is an anonymous caller.
type SessionContext struct {
	profileID int64
}

// NewSessionContext returns a session signed in as profileID. Non-positive ids are anonymous.
func NewSessionContext(profileID int64) SessionContext {
	if profileID <= 0 {
		return SessionContext{}
	}

	return SessionContext{profileID: profileID}
}

// AnonymousSession returns a session with nobody signed in.
func AnonymousSession() SessionContext {
	return SessionContext{}
}

// CurrentProfile returns the signed-in profile id, if any.
func (s SessionContext) CurrentProfile() (int64, bool) {
	return s.profileID, s.profileID > 0
}

// RequireSignedIn fails with an authorization error carrying message when nobody is signed in.
func (s SessionContext) RequireSignedIn(message string) (int64, error) {
	id, ok := s.CurrentProfile()
	if !ok {
		return 0, domainerrors.Unauthorized(message)
	}

	return id, nil
}

// RequireOwner fails unless the caller is signed in as ownerID.
func (s SessionContext) RequireOwner(ownerID int64, message string) error {
	id, err := s.RequireSignedIn(message)
	if err != nil {
		return err
	}
	if id != ownerID {
		return domainerrors.Forbidden(message)
	}

	return nil
}
