package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-hub/models"
)

// ErrLocalSessionNotFound is returned by [SessionRepository.Load] when no
// session snapshot is cached for the requested class.
var ErrLocalSessionNotFound = errors.New("local session not found")

// SessionRepository is the local persistent cache of client sessions — the
// analog of browser storage. One independent snapshot is held per session
// class, so a user session and an admin session can coexist.
type SessionRepository interface {
	// Save upserts the snapshot for its class.
	Save(ctx context.Context, session models.Session) error

	// Load returns the cached snapshot for the class, or
	// [ErrLocalSessionNotFound] when the slot is empty.
	Load(ctx context.Context, class models.SessionClass) (models.Session, error)

	// Delete clears the slot for the class. Deleting an empty slot is not
	// an error: logout must be idempotent.
	Delete(ctx context.Context, class models.SessionClass) error
}
