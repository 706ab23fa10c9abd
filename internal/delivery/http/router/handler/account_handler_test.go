package handler

import (
	"net/http"
	"testing"

	"favorites/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_SignIn(t *testing.T) {
	env := newTestEnv(t)
	lea := newProfile(t, 5, "lea")
	require.NoError(t, lea.SetPassword("digest", "salt"))

	env.profileRepo.EXPECT().FindByUsername(mock.Anything, "lea").Return(lea, nil)
	env.hasher.EXPECT().Check("Secret123!", "salt", "digest").Return(true)

	rec := env.serve(t, http.MethodPost, "/api/signin", `{"profileUsername":"lea","profilePassword":"Secret123!"}`, requestOptions{xsrf: true})

	require.Equal(t, http.StatusOK, rec.Code)
	reply := decodeReply(t, rec)
	assert.Equal(t, "Signed in OK", reply["message"])
	assert.Equal(t, "lea", reply["data"].(map[string]any)["profileUsername"])
	assert.NotContains(t, rec.Body.String(), "digest")

	cookie := findCookie(rec, "favorites_session")
	require.NotNil(t, cookie)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	assert.Equal(t, int64(5), env.manager.Load(req).ProfileID())
}

func TestAccountHandler_SignInRejected(t *testing.T) {
	env := newTestEnv(t)

	env.profileRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrProfileNotFound)

	rec := env.serve(t, http.MethodPost, "/api/signin", `{"profileUsername":"ghost","profilePassword":"x"}`, requestOptions{xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"Invalid username or password"}`, rec.Body.String())
}

func TestAccountHandler_SignOut(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodPost, "/api/signout", "", requestOptions{profileID: 5, xsrf: true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Signed out OK"}`, rec.Body.String())

	cookie := findCookie(rec, "favorites_session")
	require.NotNil(t, cookie)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	assert.Zero(t, env.manager.Load(req).ProfileID())
}
