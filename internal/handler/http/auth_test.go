// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/service"
	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginData() models.LoginData {
	return models.LoginData{
		User:      models.AccountView{ID: 7, Name: "Administrator", Email: "admin@example.com", Role: models.RoleAdmin},
		Token:     validToken,
		ExpiresAt: testSession.ExpiresAt,
	}
}

// ─────────────────────────────────────────────
// POST /api/auth/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := sessionAuth()
	auth.loginFn = func(_ context.Context, creds models.Credentials) (models.LoginData, error) {
		assert.Equal(t, "admin@example.com", creds.Identifier)
		assert.Equal(t, "admin123", creds.Secret)
		return loginData(), nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"admin123"}`, "")

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	data := dataMap(t, env)
	assert.Equal(t, validToken, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "admin@example.com", user["email"])
	assert.Equal(t, "admin", user["role"])
	assert.Equal(t, float64(7), user["id"])

	cookie := cookieNamed(rr, adminCookieName)
	require.NotNil(t, cookie, "login must set the admin cookie session")
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_FailuresAreGeneric(t *testing.T) {
	for _, cause := range []error{service.ErrInvalidCredentials, service.ErrInsufficientRole} {
		t.Run(cause.Error(), func(t *testing.T) {
			auth := sessionAuth()
			auth.loginFn = func(context.Context, models.Credentials) (models.LoginData, error) {
				return models.LoginData{}, cause
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"x"}`, "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, genericAuthFailure, env.Message)
			assert.Nil(t, cookieNamed(rr, adminCookieName))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":`, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}

func TestLogin_StoreFailureIsGeneric500(t *testing.T) {
	auth := sessionAuth()
	auth.loginFn = func(context.Context, models.Credentials) (models.LoginData, error) {
		return models.LoginData{}, store.ErrExecutingQuery
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"x"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeEnvelope(t, rr).Message)
}

// ─────────────────────────────────────────────
// Cookie session round trip
// ─────────────────────────────────────────────

func TestCookieSession_LoginThenMeThenLogout(t *testing.T) {
	var revoked []models.Session
	auth := sessionAuth()
	auth.loginFn = func(context.Context, models.Credentials) (models.LoginData, error) {
		return loginData(), nil
	}
	auth.accountFn = func(_ context.Context, id int64) (models.AdminAccount, error) {
		return models.AdminAccount{ID: id, Identifier: "admin@example.com", Name: "Administrator", Role: models.RoleAdmin}, nil
	}
	auth.logoutFn = func(_ context.Context, session models.Session) error {
		revoked = append(revoked, session)
		return nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	login := httptest.NewRecorder()
	router.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"admin123"}`)))
	require.Equal(t, http.StatusOK, login.Code)
	cookie := cookieNamed(login, adminCookieName)
	require.NotNil(t, cookie)

	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	meReq.AddCookie(cookie)
	me := httptest.NewRecorder()
	router.ServeHTTP(me, meReq)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Equal(t, "admin@example.com", dataMap(t, decodeEnvelope(t, me))["email"])

	logoutReq := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	logoutReq.AddCookie(cookie)
	logout := httptest.NewRecorder()
	router.ServeHTTP(logout, logoutReq)
	require.Equal(t, http.StatusOK, logout.Code)
	require.Len(t, revoked, 1)
	assert.Equal(t, testSession.TokenID, revoked[0].TokenID)

	cleared := cookieNamed(logout, adminCookieName)
	require.NotNil(t, cleared)
	assert.True(t, cleared.MaxAge < 0)
}

func TestCookieSession_TamperedCookieIsRejected(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: "forged"})
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ─────────────────────────────────────────────
// Account management
// ─────────────────────────────────────────────

func TestMe_AccountGone(t *testing.T) {
	auth := sessionAuth()
	auth.accountFn = func(context.Context, int64) (models.AdminAccount, error) {
		return models.AdminAccount{}, service.ErrNotFound
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodGet, "/api/auth/me", "", validToken)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLogout_RevocationFailure(t *testing.T) {
	auth := sessionAuth()
	auth.logoutFn = func(context.Context, models.Session) error {
		return errors.New("db down")
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodPost, "/api/auth/logout", "", validToken)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateIdentifier(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "renamed", wantStatus: http.StatusOK},
		{name: "taken", err: service.ErrIdentifierTaken, wantStatus: http.StatusConflict},
		{name: "invalid email", err: service.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "old account missing", err: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := sessionAuth()
			auth.updateIdentifierFn = func(_ context.Context, oldIdentifier, newIdentifier string) (models.LoginData, error) {
				assert.Equal(t, testSession.Identifier, oldIdentifier)
				assert.Equal(t, "new@example.com", newIdentifier)
				if tt.err != nil {
					return models.LoginData{}, tt.err
				}
				data := loginData()
				data.User.Email = newIdentifier
				return data, nil
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rr := serve(t, h, http.MethodPut, "/api/auth/identifier", `{"newEmail":"new@example.com"}`, validToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				assert.NotNil(t, cookieNamed(rr, adminCookieName))
			}
		})
	}
}

func TestUpdateSecret(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "changed", wantStatus: http.StatusOK},
		{name: "wrong current", err: service.ErrWrongSecret, wantStatus: http.StatusBadRequest},
		{name: "too short", err: service.ErrValidation, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := sessionAuth()
			auth.updateSecretFn = func(_ context.Context, identifier string, change models.SecretChange) error {
				assert.Equal(t, testSession.Identifier, identifier)
				assert.Equal(t, "admin123", change.CurrentSecret)
				assert.Equal(t, "s3cret!", change.NewSecret)
				return tt.err
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			rr := serve(t, h, http.MethodPut, "/api/auth/secret", `{"currentPassword":"admin123","newPassword":"s3cret!"}`, validToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListAccounts_HidesSecretHash(t *testing.T) {
	auth := sessionAuth()
	auth.listAccountsFn = func(context.Context) ([]models.AdminAccount, error) {
		return []models.AdminAccount{
			{ID: 1, Identifier: "first@example.com", SecretHash: "$argon2id$...", Role: models.RoleAdmin, CreatedAt: time.Now()},
			{ID: 2, Identifier: "second@example.com", SecretHash: "$argon2id$...", Role: models.RoleAdmin, CreatedAt: time.Now()},
		}, nil
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rr := serve(t, h, http.MethodGet, "/api/auth/accounts", "", validToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "argon2id")
	accounts := decodeEnvelope(t, rr).Data.([]any)
	require.Len(t, accounts, 2)
	assert.Equal(t, "first@example.com", accounts[0].(map[string]any)["email"])
}
