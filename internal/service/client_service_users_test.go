package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminClient(t *testing.T, srv *mockServerAdapter) (ClientUsersService, SessionService) {
	t.Helper()
	srv.adminLoginFn = func(context.Context, models.LoginRequest) (models.AdminAuthResponse, error) {
		return models.AdminAuthResponse{Token: "admin-token", Admin: models.User{UserID: 1, IsAdmin: true}}, nil
	}

	sessions := NewSessionService(srv, newMemorySessionRepository(), NewSessionBroadcaster(), logger.Nop())
	_, err := sessions.AdminLogin(context.Background(), models.LoginRequest{Email: "root@example.com", Password: "admin-pass"})
	require.NoError(t, err)

	return NewClientUsersService(srv, sessions, logger.Nop()), sessions
}

func TestClientUsersService_ListUsers_UsesAdminToken(t *testing.T) {
	srv := &mockServerAdapter{}
	srv.listUsersFn = func(context.Context) ([]models.User, error) {
		assert.Equal(t, "admin-token", srv.Token())
		return []models.User{{UserID: 2}, {UserID: 1}}, nil
	}
	svc, _ := newAdminClient(t, srv)

	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestClientUsersService_RequiresAdminSession(t *testing.T) {
	srv := &mockServerAdapter{}
	sessions := NewSessionService(srv, newMemorySessionRepository(), NewSessionBroadcaster(), logger.Nop())
	svc := NewClientUsersService(srv, sessions, logger.Nop())

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	err = svc.DeleteUser(context.Background(), models.DeleteUserRequest{UserID: 2})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientUsersService_AddUser_DuplicateEmailIsMapped(t *testing.T) {
	srv := &mockServerAdapter{}
	srv.addUserFn = func(context.Context, models.RegisterRequest) (models.User, error) {
		return models.User{}, fmt.Errorf("%w: email already exists", adapter.ErrBadRequest)
	}
	svc, _ := newAdminClient(t, srv)

	_, err := svc.AddUser(context.Background(), models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestClientUsersService_UpdateUser(t *testing.T) {
	name := "Grace"
	srv := &mockServerAdapter{}
	srv.updateUserFn = func(_ context.Context, req models.UpdateDataRequest) (models.User, error) {
		return models.User{UserID: req.UserID, Name: *req.Name}, nil
	}
	svc, _ := newAdminClient(t, srv)

	user, err := svc.UpdateUser(context.Background(), models.UpdateDataRequest{UserID: 4, Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
}

func TestClientUsersService_DeleteUser_NotFoundIsMapped(t *testing.T) {
	srv := &mockServerAdapter{}
	srv.deleteUserFn = func(context.Context, models.DeleteUserRequest) error {
		return fmt.Errorf("%w: user not found", adapter.ErrNotFound)
	}
	svc, sessions := newAdminClient(t, srv)

	err := svc.DeleteUser(context.Background(), models.DeleteUserRequest{UserID: 404})

	// the 404 refers to the deletion target, not the admin account
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
	_, err = sessions.Current(context.Background(), models.SessionClassAdmin)
	assert.NoError(t, err)
}

func TestClientUsersService_ListUsers_OrphanedAdminSessionIsClosed(t *testing.T) {
	srv := &mockServerAdapter{}
	srv.listUsersFn = func(context.Context) ([]models.User, error) {
		return nil, fmt.Errorf("%w: user not found", adapter.ErrNotFound)
	}
	svc, sessions := newAdminClient(t, srv)

	_, err := svc.ListUsers(context.Background())

	// listing names no target user, so a not-found reply means the admin
	// account itself was deleted while its token was still live
	assert.ErrorIs(t, err, ErrSessionOrphaned)
	_, err = sessions.Current(context.Background(), models.SessionClassAdmin)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientUsersService_AddUser_OrphanedAdminSessionIsClosed(t *testing.T) {
	srv := &mockServerAdapter{}
	srv.addUserFn = func(context.Context, models.RegisterRequest) (models.User, error) {
		return models.User{}, fmt.Errorf("%w: user not found", adapter.ErrNotFound)
	}
	svc, sessions := newAdminClient(t, srv)

	_, err := svc.AddUser(context.Background(), models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrSessionOrphaned)
	_, err = sessions.Current(context.Background(), models.SessionClassAdmin)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
