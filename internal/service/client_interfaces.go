package service

import (
	"context"

	"github.com/MKhiriev/go-user-hub/models"
)

// SessionBroadcaster is the cross-tab propagation port. One hub instance is
// shared by every session manager in the process; each manager publishes its
// own logout events and applies the ones published by others.
type SessionBroadcaster interface {
	// Publish fans the event out to every current subscriber. It never
	// blocks: a subscriber that is not draining its channel misses the
	// event.
	Publish(event models.SessionEvent)

	// Subscribe registers a new listener and returns its event channel
	// together with a cancel function that removes the subscription and
	// closes the channel.
	Subscribe() (<-chan models.SessionEvent, func())
}

// SessionService is the client-side session manager. It keeps one
// independent session slot per [models.SessionClass] ("user" and "admin"),
// mirrors every slot change into the local session cache, and propagates
// logouts to the other managers through the broadcast port.
type SessionService interface {
	// TabID returns this manager's unique identifier. Broadcast events
	// carrying the same ID are ignored on receipt.
	TabID() string

	// Restore loads previously cached sessions into memory. It is called
	// once at startup and ignores empty slots.
	Restore(ctx context.Context) error

	// Register creates an account on the server and opens the user session
	// slot with the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and opens the user slot.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// AdminLogin authenticates against the admin endpoint and opens the
	// admin slot. The user slot is left untouched.
	AdminLogin(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Current returns the in-memory session for the class, or
	// [ErrNotLoggedIn] when the slot is anonymous.
	Current(ctx context.Context, class models.SessionClass) (models.Session, error)

	// RefreshProfile re-fetches the user slot's identity from the server.
	// A not-found reply means the account was deleted while the token was
	// still live: the slot is force-closed and [ErrSessionOrphaned] is
	// returned.
	RefreshProfile(ctx context.Context) (models.User, error)

	// UpdateData changes the user slot's own name and/or email and updates
	// the cached identity on success.
	UpdateData(ctx context.Context, req models.UpdateDataRequest) (models.User, error)

	// UploadProfileImage uploads a new avatar for the user slot and
	// updates the cached identity on success.
	UploadProfileImage(ctx context.Context, filename string, data []byte) (models.User, error)

	// Logout closes the slot locally and publishes a logout event so every
	// other manager closes theirs too.
	Logout(ctx context.Context, class models.SessionClass) error

	// SyncLogout applies an externally observed logout event. Events
	// published by this manager are ignored, and the event is never
	// re-published.
	SyncLogout(ctx context.Context, event models.SessionEvent) error

	// Run subscribes to the broadcast port and applies incoming events
	// until ctx is cancelled.
	Run(ctx context.Context)
}

// ClientUsersService is the client-side face of the admin directory: list,
// add, update, and delete accounts through the server adapter using the
// admin session's token.
type ClientUsersService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error)
	DeleteUser(ctx context.Context, req models.DeleteUserRequest) error
}
