package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── GET /api/user/profile ────────────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 3, Email: "ada@example.com", Name: "Ada"})
	h := newTestHandler(auth, users)

	rec := doJSON(t, h, http.MethodGet, "/api/user/profile", "valid-token", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(3), resp.User.UserID)
	assert.Equal(t, "Ada", resp.User.Name)
}

func TestProfile_DeletedSubjectGetsForcedLogoutSignal(t *testing.T) {
	// the token is still valid but its subject is gone; the reply must be
	// the 404 forced-logout signal, not a 500
	auth, users := authedMocks(models.User{UserID: 3})
	users.getUserFn = nil
	h := newTestHandler(auth, users)

	rec := doJSON(t, h, http.MethodGet, "/api/user/profile", "valid-token", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

// ── PUT /api/user/update-data/{id} ───────────────────────────────────────────

func TestUpdateData_Success(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 5})
	users.updateFn = func(_ context.Context, req models.UpdateDataRequest) (models.User, error) {
		assert.Equal(t, int64(5), req.UserID)
		return models.User{UserID: 5, Name: *req.Name}, nil
	}
	h := newTestHandler(auth, users)

	name := "Ada Lovelace"
	rec := doJSON(t, h, http.MethodPut, "/api/user/update-data/5", "valid-token", models.UpdateDataRequest{Name: &name})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, name, resp.User.Name)
}

func TestUpdateData_OtherUsersRecordIsForbidden(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 5})
	h := newTestHandler(auth, users)

	name := "Mallory"
	rec := doJSON(t, h, http.MethodPut, "/api/user/update-data/6", "valid-token", models.UpdateDataRequest{Name: &name})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "access denied")
}

func TestUpdateData_NonNumericID(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 5})
	h := newTestHandler(auth, users)

	rec := doJSON(t, h, http.MethodPut, "/api/user/update-data/abc", "valid-token", models.UpdateDataRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid user ID")
}

// ── POST /api/user/update-profile ────────────────────────────────────────────

func TestUpdateProfileImage_Success(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 2})
	users.updateImageFn = func(_ context.Context, userID int64, data []byte, contentType string) (models.User, error) {
		assert.Equal(t, int64(2), userID)
		assert.Equal(t, "image/png", contentType)
		assert.NotEmpty(t, data)
		return models.User{UserID: 2, ProfileImageURL: "https://images.example.com/a.png"}, nil
	}
	h := newTestHandler(auth, users)

	body, formContentType := multipartImage(t, "profileImage", "avatar.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/user/update-profile", body)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", formContentType)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "https://images.example.com/a.png", resp.User.ProfileImageURL)
}

func TestUpdateProfileImage_MissingFormField(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 2})
	h := newTestHandler(auth, users)

	body, formContentType := multipartImage(t, "wrongField", "avatar.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/user/update-profile", body)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", formContentType)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProfileImage_UnsupportedFormat(t *testing.T) {
	auth, users := authedMocks(models.User{UserID: 2})
	users.updateImageFn = func(context.Context, int64, []byte, string) (models.User, error) {
		return models.User{}, service.ErrUnsupportedImageFormat
	}
	h := newTestHandler(auth, users)

	body, formContentType := multipartImage(t, "profileImage", "avatar.gif", "image/gif", []byte("gif-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/user/update-profile", body)
	req.Header.Set("Authorization", "Bearer valid-token")
	req.Header.Set("Content-Type", formContentType)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported image format")
}
