package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/models"
)

// clientUsersService is the admin directory surface. Every call runs with
// the admin slot's token, so an expired or missing admin session fails fast
// with ErrNotLoggedIn before any network traffic.
type clientUsersService struct {
	adapter  adapter.ServerAdapter
	sessions SessionService
	logger   *logger.Logger
}

func NewClientUsersService(serverAdapter adapter.ServerAdapter, sessions SessionService, logger *logger.Logger) ClientUsersService {
	return &clientUsersService{adapter: serverAdapter, sessions: sessions, logger: logger}
}

func (s *clientUsersService) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := s.useAdminToken(ctx); err != nil {
		return nil, err
	}

	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, s.mapDirectoryError(ctx, err)
	}
	return users, nil
}

func (s *clientUsersService) AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := s.useAdminToken(ctx); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.AddUser(ctx, req)
	if err != nil {
		return models.User{}, s.mapDirectoryError(ctx, err)
	}
	return user, nil
}

func (s *clientUsersService) UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	if err := s.useAdminToken(ctx); err != nil {
		return models.User{}, err
	}

	user, err := s.adapter.UpdateUser(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (s *clientUsersService) DeleteUser(ctx context.Context, req models.DeleteUserRequest) error {
	if err := s.useAdminToken(ctx); err != nil {
		return err
	}

	if err := s.adapter.DeleteUser(ctx, req); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

// mapDirectoryError translates adapter failures for the calls that name no
// target user. A not-found reply there can only be the auth middleware
// reporting that the admin account itself is gone, so the admin slot is
// force-closed the same way the session manager closes an orphaned user
// slot. UpdateUser and DeleteUser keep the plain mapping: their 404 refers
// to the record being operated on.
func (s *clientUsersService) mapDirectoryError(ctx context.Context, err error) error {
	mapped := mapAdapterError(err)

	if errors.Is(mapped, store.ErrNoUserWasFound) {
		if logoutErr := s.sessions.Logout(ctx, models.SessionClassAdmin); logoutErr != nil {
			s.logger.Err(logoutErr).Msg("error force-closing orphaned admin session")
		}
		return ErrSessionOrphaned
	}

	return mapped
}

func (s *clientUsersService) useAdminToken(ctx context.Context) error {
	session, err := s.sessions.Current(ctx, models.SessionClassAdmin)
	if err != nil {
		return err
	}
	s.adapter.SetToken(session.Token)
	return nil
}
