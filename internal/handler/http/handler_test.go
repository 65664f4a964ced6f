// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService with overridable function
// fields. Unset fields behave like an empty system: parse fails, lookups
// miss.
type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	adminLoginFn  func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, errors.New("register not expected")
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, errors.New("login not expected")
}

func (m *mockAuthService) AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.adminLoginFn != nil {
		return m.adminLoginFn(ctx, req)
	}
	return models.User{}, errors.New("admin login not expected")
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// mockUsersService implements service.UsersService with overridable function
// fields.
type mockUsersService struct {
	updateFn      func(ctx context.Context, req models.UpdateDataRequest) (models.User, error)
	updateImageFn func(ctx context.Context, userID int64, data []byte, contentType string) (models.User, error)
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
	addFn         func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	deleteFn      func(ctx context.Context, req models.DeleteUserRequest) error
}

func (m *mockUsersService) UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return models.User{}, errors.New("update not expected")
}

func (m *mockUsersService) UpdateProfileImage(ctx context.Context, userID int64, data []byte, contentType string) (models.User, error) {
	if m.updateImageFn != nil {
		return m.updateImageFn(ctx, userID, data, contentType)
	}
	return models.User{}, errors.New("image update not expected")
}

func (m *mockUsersService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUsersService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, errors.New("list not expected")
}

func (m *mockUsersService) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.addFn != nil {
		return m.addFn(ctx, req)
	}
	return models.User{}, errors.New("add not expected")
}

func (m *mockUsersService) DeleteUser(ctx context.Context, req models.DeleteUserRequest) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return errors.New("delete not expected")
}

// newTestHandler wires a Handler over the given mocks with a nop logger.
func newTestHandler(auth *mockAuthService, users *mockUsersService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:  auth,
			UsersService: users,
		},
		version: "test",
		logger:  logger.Nop(),
	}
}

// authedMocks returns mocks where the bearer token "valid-token" resolves to
// the given user.
func authedMocks(authUser models.User) (*mockAuthService, *mockUsersService) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: tokenString, UserID: authUser.UserID}, nil
		},
	}
	users := &mockUsersService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			if userID != authUser.UserID {
				return models.User{}, store.ErrNoUserWasFound
			}
			return authUser, nil
		},
	}
	return auth, users
}

// doJSON performs a request with an optional JSON body against the full
// router built by Handler.Init.
func doJSON(t *testing.T, h *Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// multipartImage builds a multipart body with a single "profileImage" file.
func multipartImage(t *testing.T, fieldName, filename, contentType string, data []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}
