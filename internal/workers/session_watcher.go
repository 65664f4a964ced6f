// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/service"
	"github.com/MKhiriev/go-user-hub/internal/store"
	"github.com/MKhiriev/go-user-hub/internal/utils"
	"github.com/MKhiriev/go-user-hub/models"
)

const defaultWatchInterval = 2 * time.Second

// SessionWatcher polls the local session cache and publishes a synthetic
// logout event when a previously cached session disappears. It is the
// fallback propagation path for processes that share the cache file but not
// the in-process broadcast hub.
type SessionWatcher struct {
	sessions    store.SessionRepository
	broadcaster service.SessionBroadcaster
	interval    time.Duration
	logger      *logger.Logger

	// watcherID is never equal to any session manager's tab ID, so the
	// synthetic events are applied by every manager in the process.
	watcherID string

	seen map[models.SessionClass]string
}

func NewSessionWatcher(sessions store.SessionRepository, broadcaster service.SessionBroadcaster, interval time.Duration, logger *logger.Logger) *SessionWatcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	return &SessionWatcher{
		sessions:    sessions,
		broadcaster: broadcaster,
		interval:    interval,
		logger:      logger,
		watcherID:   utils.NewUUIDGenerator().Generate(),
		seen:        make(map[models.SessionClass]string),
	}
}

func (w *SessionWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// prime the last-seen tokens so a cache that is already empty at
	// startup does not produce a spurious logout
	w.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *SessionWatcher) poll(ctx context.Context) {
	for _, class := range []models.SessionClass{models.SessionClassUser, models.SessionClassAdmin} {
		session, err := w.sessions.Load(ctx, class)

		switch {
		case err == nil:
			w.seen[class] = session.Token

		case errors.Is(err, store.ErrLocalSessionNotFound):
			if w.seen[class] == "" {
				continue
			}
			w.seen[class] = ""
			w.broadcaster.Publish(models.SessionEvent{Class: class, SourceTabID: w.watcherID})
			w.logger.Info().Str("class", string(class)).Msg("cached session disappeared, broadcasting logout")

		default:
			w.logger.Err(err).Str("class", string(class)).Msg("error polling session cache")
		}
	}
}
