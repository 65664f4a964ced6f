package service

import (
	"context"

	"github.com/MKhiriev/go-user-hub/models"
)

// AuthService covers account registration, credential verification for both
// user and admin surfaces, and the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	AdminLogin(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UsersService covers profile management and the admin CRUD surface over
// user accounts.
type UsersService interface {
	UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error)
	UpdateProfileImage(ctx context.Context, userID int64, data []byte, contentType string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	DeleteUser(ctx context.Context, req models.DeleteUserRequest) error
}
