package store

import (
	"context"

	"github.com/MKhiriev/go-user-hub/models"
)

// UserRepository is the persistence contract for user accounts. The unique
// email constraint is enforced atomically by the store itself; callers only
// need to match [ErrEmailAlreadyExists] on insert or update.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ImageStore is the narrow contract to the external avatar host:
// given bytes, return a stable public URL or fail with a wrapped
// [ErrImageStoreUnavailable].
type ImageStore interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
