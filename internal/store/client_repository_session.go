package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/models"
)

const (
	saveSession = `INSERT INTO sessions (class, token, user_json, updated_at)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT(class) DO UPDATE SET token = excluded.token, user_json = excluded.user_json, updated_at = excluded.updated_at;`

	loadSession = `SELECT class, token, user_json, updated_at
    FROM sessions
    WHERE class = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE class = $1;`
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. It persists one session snapshot per class in the
// local cache database.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided local database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts the session snapshot for its class. The cached identity is
// stored as JSON; the password hash never reaches the client, so the
// serialized projection is safe to persist.
func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Msg("error encoding session identity")
		return fmt.Errorf("error encoding session identity: %w", err)
	}

	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = time.Now()
	}

	_, err = r.db.ExecContext(ctx, saveSession, string(session.Class), session.Token, string(userJSON), session.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Save").Str("class", string(session.Class)).Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Load returns the cached session snapshot for the class.
//
// Returns [ErrLocalSessionNotFound] when the slot is empty.
func (r *sessionRepository) Load(ctx context.Context, class models.SessionClass) (models.Session, error) {
	log := logger.FromContext(ctx)

	var (
		session  models.Session
		userJSON string
	)

	row := r.db.QueryRowContext(ctx, loadSession, string(class))
	if err := row.Scan(&session.Class, &session.Token, &userJSON, &session.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.Load").Str("class", string(class)).Msg("error scanning session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Load").Str("class", string(class)).Msg("error decoding session identity")
		return models.Session{}, fmt.Errorf("error decoding session identity: %w", err)
	}

	return session, nil
}

// Delete clears the slot for the class. Clearing an already-empty slot
// succeeds: logout must be idempotent across tabs.
func (r *sessionRepository) Delete(ctx context.Context, class models.SessionClass) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, string(class)); err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Str("class", string(class)).Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
