// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
)

// sessionService keeps one session slot per class in memory, mirrors every
// slot change into the local session cache, and exchanges logout events with
// its peers through the broadcast port. All slot access goes through mu.
type sessionService struct {
	adapter     adapter.ServerAdapter
	sessions    store.SessionRepository
	broadcaster SessionBroadcaster
	logger      *logger.Logger

	tabID string

	mu     sync.Mutex
	states map[models.SessionClass]sessionState
}

// NewSessionService constructs a session manager with a fresh tab ID and
// both slots anonymous. Call Restore to pick up previously cached sessions.
func NewSessionService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, broadcaster SessionBroadcaster, logger *logger.Logger) SessionService {
	return &sessionService{
		adapter:     serverAdapter,
		sessions:    sessions,
		broadcaster: broadcaster,
		logger:      logger,
		tabID:       utils.NewUUIDGenerator().Generate(),
		states: map[models.SessionClass]sessionState{
			models.SessionClassUser:  {},
			models.SessionClassAdmin: {},
		},
	}
}

func (s *sessionService) TabID() string {
	return s.tabID
}

func (s *sessionService) Restore(ctx context.Context) error {
	for _, class := range []models.SessionClass{models.SessionClassUser, models.SessionClassAdmin} {
		cached, err := s.sessions.Load(ctx, class)
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error loading cached %s session: %w", class, err)
		}

		s.mu.Lock()
		s.states[class] = openSession(cached)
		s.mu.Unlock()

		s.logger.Info().Str("class", string(class)).Int64("id", cached.User.UserID).Msg("session restored from cache")
	}
	return nil
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	auth, err := s.adapter.Register(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return s.openSlot(ctx, models.SessionClassUser, auth.Token, auth.User)
}

func (s *sessionService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	auth, err := s.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return s.openSlot(ctx, models.SessionClassUser, auth.Token, auth.User)
}

func (s *sessionService) AdminLogin(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	auth, err := s.adapter.AdminLogin(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	return s.openSlot(ctx, models.SessionClassAdmin, auth.Token, auth.Admin)
}

func (s *sessionService) Current(_ context.Context, class models.SessionClass) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.states[class]
	if state.Status != StateAuthenticated {
		return models.Session{}, ErrNotLoggedIn
	}
	return state.Session, nil
}

func (s *sessionService) RefreshProfile(ctx context.Context) (models.User, error) {
	session, err := s.Current(ctx, models.SessionClassUser)
	if err != nil {
		return models.User{}, err
	}

	s.adapter.SetToken(session.Token)
	user, err := s.adapter.Profile(ctx)
	if err != nil {
		return models.User{}, s.mapProtectedError(ctx, models.SessionClassUser, err)
	}

	s.storeIdentity(ctx, models.SessionClassUser, user)
	return user, nil
}

func (s *sessionService) UpdateData(ctx context.Context, req models.UpdateDataRequest) (models.User, error) {
	session, err := s.Current(ctx, models.SessionClassUser)
	if err != nil {
		return models.User{}, err
	}
	req.UserID = session.User.UserID

	s.adapter.SetToken(session.Token)
	user, err := s.adapter.UpdateData(ctx, req)
	if err != nil {
		return models.User{}, s.mapProtectedError(ctx, models.SessionClassUser, err)
	}

	s.storeIdentity(ctx, models.SessionClassUser, user)
	return user, nil
}

func (s *sessionService) UploadProfileImage(ctx context.Context, filename string, data []byte) (models.User, error) {
	session, err := s.Current(ctx, models.SessionClassUser)
	if err != nil {
		return models.User{}, err
	}

	s.adapter.SetToken(session.Token)
	user, err := s.adapter.UploadProfileImage(ctx, filename, data)
	if err != nil {
		return models.User{}, s.mapProtectedError(ctx, models.SessionClassUser, err)
	}

	s.storeIdentity(ctx, models.SessionClassUser, user)
	return user, nil
}

func (s *sessionService) Logout(ctx context.Context, class models.SessionClass) error {
	if err := s.closeSlot(ctx, class); err != nil {
		return err
	}

	s.broadcaster.Publish(models.SessionEvent{Class: class, SourceTabID: s.tabID})
	s.logger.Info().Str("class", string(class)).Msg("logged out")
	return nil
}

func (s *sessionService) SyncLogout(ctx context.Context, event models.SessionEvent) error {
	// own events come back through the hub; applying them again is
	// harmless but publishing them again would loop forever
	if event.SourceTabID == s.tabID {
		return nil
	}

	if err := s.closeSlot(ctx, event.Class); err != nil {
		return err
	}

	s.logger.Info().Str("class", string(event.Class)).Str("source", event.SourceTabID).Msg("logout synced from another tab")
	return nil
}

func (s *sessionService) Run(ctx context.Context) {
	events, cancel := s.broadcaster.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := s.SyncLogout(ctx, event); err != nil {
				s.logger.Err(err).Str("class", string(event.Class)).Msg("error applying synced logout")
			}
		}
	}
}

// openSlot persists the fresh session and transitions the slot. Login and
// register never publish: the other tabs discover the session through the
// shared cache, not through an event.
func (s *sessionService) openSlot(ctx context.Context, class models.SessionClass, token string, user models.User) (models.Session, error) {
	session := models.Session{
		Class:     class,
		Token:     token,
		User:      user,
		UpdatedAt: time.Now(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error caching %s session: %w", class, err)
	}

	s.mu.Lock()
	s.states[class] = openSession(session)
	s.mu.Unlock()

	return session, nil
}

// closeSlot clears the slot in memory and in the cache. It is idempotent.
func (s *sessionService) closeSlot(ctx context.Context, class models.SessionClass) error {
	s.mu.Lock()
	s.states[class] = closeSession(s.states[class])
	s.mu.Unlock()

	if err := s.sessions.Delete(ctx, class); err != nil {
		return fmt.Errorf("error clearing cached %s session: %w", class, err)
	}
	return nil
}

// storeIdentity refreshes the slot's cached identity after a successful
// profile read or mutation. Cache write failures are logged, not returned:
// the server state already changed.
func (s *sessionService) storeIdentity(ctx context.Context, class models.SessionClass, user models.User) {
	s.mu.Lock()
	state := refreshIdentity(s.states[class], user)
	s.states[class] = state
	s.mu.Unlock()

	if state.Status != StateAuthenticated {
		return
	}

	if err := s.sessions.Save(ctx, state.Session); err != nil {
		s.logger.Err(err).Str("class", string(class)).Msg("error refreshing cached session identity")
	}
}

// mapProtectedError handles errors from bearer-protected calls. A not-found
// reply means the account behind the token is gone: the slot is closed the
// same way an explicit logout closes it, including the broadcast, and the
// caller gets ErrSessionOrphaned.
func (s *sessionService) mapProtectedError(ctx context.Context, class models.SessionClass, err error) error {
	mapped := mapAdapterError(err)

	if errors.Is(mapped, store.ErrNoUserWasFound) {
		if logoutErr := s.Logout(ctx, class); logoutErr != nil {
			s.logger.Err(logoutErr).Str("class", string(class)).Msg("error force-closing orphaned session")
		}
		return ErrSessionOrphaned
	}

	return mapped
}
