package handler

import (
	"context"
	"net/http"
	"testing"

	"favorites/internal/domain/entity"
	"favorites/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T, id int64, username string) *entity.Profile {
	t.Helper()

	profile, err := entity.NewProfile(&id, username, "Albuquerque", "2017-02-28")
	require.NoError(t, err)

	return profile
}

func TestProfileHandler_DeleteOtherProfileIsForbidden(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodDelete, "/api/profile?id=8", "", requestOptions{profileID: 9, xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"You are not allowed to access this profile"}`, rec.Body.String())
}

func TestProfileHandler_UpdateOtherProfileIsForbiddenBeforeBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodPut, "/api/profile?id=8", `{}`, requestOptions{profileID: 9, xsrf: true})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"status":403,"message":"You are not allowed to access this profile"}`, rec.Body.String())
}

func TestProfileHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	lea := newProfile(t, 5, "lea")

	env.profileRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(lea, nil)
	env.profileRepo.EXPECT().FindByUsername(mock.Anything, "lea").Return(lea, nil).Twice()
	env.profileRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrProfileNotFound)
	env.profileRepo.EXPECT().FindByLocation(mock.Anything, "Albu").Return([]*entity.Profile{lea}, nil)

	rec := env.serve(t, http.MethodGet, "/api/profile?id=5&username=ignored", "", requestOptions{})
	assert.JSONEq(t,
		`{"status":200,"data":{"profileId":5,"profileUsername":"lea","profileLocation":"Albuquerque","profileJoinDate":1488240000000}}`,
		rec.Body.String())

	for _, target := range []string{"/api/profile?username=lea", "/api/profile?profileUserName=lea"} {
		rec = env.serve(t, http.MethodGet, target, "", requestOptions{})
		assert.Equal(t, "lea", decodeReply(t, rec)["data"].(map[string]any)["profileUsername"], target)
	}

	rec = env.serve(t, http.MethodGet, "/api/profile?username=ghost", "", requestOptions{})
	assert.JSONEq(t, `{"status":200}`, rec.Body.String())

	rec = env.serve(t, http.MethodGet, "/api/profile?profileLocation=Albu", "", requestOptions{})
	assert.Len(t, decodeReply(t, rec)["data"], 1)
}

func TestProfileHandler_SignUpSignsIn(t *testing.T) {
	env := newTestEnv(t)

	env.hasher.EXPECT().NewSalt().Return("salt", nil)
	env.hasher.EXPECT().Hash("Secret123!", "salt").Return("digest", nil)
	env.profileRepo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*entity.Profile")).
		RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
			id := int64(42)

			return profile.SetID(&id)
		})

	rec := env.serve(t, http.MethodPost, "/api/profile",
		`{"profileUsername":"lea","profileLocation":"ABQ","profilePassword":"Secret123!"}`,
		requestOptions{xsrf: true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Profile created OK"}`, rec.Body.String())

	cookie := findCookie(rec, "favorites_session")
	require.NotNil(t, cookie)

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	assert.Equal(t, int64(42), env.manager.Load(req).ProfileID())
}

func TestProfileHandler_SignUpMissingFields(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		body    string
		wantMsg string
	}{
		{body: `{"profileLocation":"ABQ","profilePassword":"pw"}`, wantMsg: "No profile username."},
		{body: `{"profileUsername":"lea","profilePassword":"pw"}`, wantMsg: "No profile location."},
		{body: `{"profileUsername":"lea","profileLocation":"ABQ"}`, wantMsg: "No profile password."},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			rec := env.serve(t, http.MethodPost, "/api/profile", tt.body, requestOptions{xsrf: true})

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeReply(t, rec)["message"])
		})
	}
}

func TestProfileHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	lea := newProfile(t, 9, "lea")

	env.profileRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(lea, nil)
	env.profileRepo.EXPECT().Update(mock.Anything, lea).Return(nil)

	rec := env.serve(t, http.MethodPut, "/api/profile?id=9",
		`{"profileUsername":"lea","profileLocation":"Santa Fe"}`,
		requestOptions{profileID: 9, xsrf: true})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Profile updated OK"}`, rec.Body.String())
	assert.Equal(t, "Santa Fe", lea.Location())
}

func TestProfileHandler_UpdateMissingLocation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(t, http.MethodPut, "/api/profile?id=9", `{"profileUsername":"lea"}`, requestOptions{profileID: 9, xsrf: true})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"status":405,"message":"No profile location."}`, rec.Body.String())
}

func TestProfileHandler_DeleteSignsOut(t *testing.T) {
	env := newTestEnv(t)
	lea := newProfile(t, 9, "lea")

	env.profileRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(lea, nil)
	env.profileRepo.EXPECT().Delete(mock.Anything, lea).Return(nil)

	rec := env.serve(t, http.MethodDelete, "/api/profile?id=9", "", requestOptions{profileID: 9, xsrf: true})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200,"message":"Profile deleted OK"}`, rec.Body.String())

	cookie := findCookie(rec, "favorites_session")
	require.NotNil(t, cookie)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	assert.Zero(t, env.manager.Load(req).ProfileID())
}

func TestProfileHandler_DeleteMissingProfile(t *testing.T) {
	env := newTestEnv(t)

	env.profileRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, repository.ErrProfileNotFound)

	rec := env.serve(t, http.MethodDelete, "/api/profile?id=9", "", requestOptions{profileID: 9, xsrf: true})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":404,"message":"Profile does not exist"}`, rec.Body.String())
}
