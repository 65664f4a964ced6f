// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAuth sends a request through the auth middleware alone, with a next
// handler that records the context user.
func runAuth(t *testing.T, h *Handler, authHeader string) (*httptest.ResponseRecorder, models.User, bool) {
	t.Helper()

	var (
		ctxUser models.User
		ctxOK   bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxUser, ctxOK = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec, ctxUser, ctxOK
}

func TestAuthMiddleware_ValidTokenAttachesUser(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 3, Email: "ada@example.com"})
	h := newTestHandler(auth, users)

	rec, ctxUser, ctxOK := runAuth(t, h, "Bearer valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ctxOK, "user must be attached to the request context")
	assert.Equal(t, int64(3), ctxUser.UserID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockUsersService{})

	rec, _, ctxOK := runAuth(t, h, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ctxOK)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockUsersService{})

	for _, header := range []string{"Bearer", "Bearer "} {
		rec, _, _ := runAuth(t, h, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 3})
	h := newTestHandler(auth, users)

	rec, _, ctxOK := runAuth(t, h, "Bearer garbage-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ctxOK)
	assert.Contains(t, rec.Body.String(), "token is expired or invalid")
}

func TestAuthMiddleware_DeletedSubjectIs404(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 3})
	users.getUserFn = nil
	h := newTestHandler(auth, users)

	rec, _, ctxOK := runAuth(t, h, "Bearer valid-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, ctxOK)
	assert.Contains(t, rec.Body.String(), "user not found")
}

func TestAuthMiddleware_SubjectLookupFailureIs500(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 3})
	users.getUserFn = func(context.Context, int64) (models.User, error) {
		return models.User{}, errors.New("dial tcp 10.0.0.5:5432: connection refused")
	}
	h := newTestHandler(auth, users)

	rec, _, ctxOK := runAuth(t, h, "Bearer valid-token")

	// a store outage must not be mistaken for the forced-logout signal
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, ctxOK)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "user not found")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
