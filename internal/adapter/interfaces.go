// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the go-user-hub server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-hub/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-user-hub server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register, Login, or AdminLogin, and with an empty
	// string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the issued token together
	// with the created identity.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates a user and returns the issued token together with
	// the authenticated identity.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// AdminLogin authenticates an administrator against the dedicated admin
	// endpoint.
	AdminLogin(ctx context.Context, req models.LoginRequest) (models.AdminAuthResponse, error)

	// Profile fetches the identity behind the stored bearer token. A 404
	// response means the account no longer exists server-side.
	Profile(ctx context.Context) (models.User, error)

	// UpdateData applies a partial profile update for the given user and
	// returns the canonical post-update record.
	UpdateData(ctx context.Context, req models.UpdateDataRequest) (models.User, error)

	// UploadProfileImage uploads new avatar bytes as a multipart form and
	// returns the updated record carrying the hosted image URL.
	UploadProfileImage(ctx context.Context, filename string, data []byte) (models.User, error)

	// ListUsers fetches every account. Admin token required.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AddUser creates an account on behalf of an administrator.
	AddUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// UpdateUser applies a partial update to any account. Admin token
	// required.
	UpdateUser(ctx context.Context, req models.UpdateDataRequest) (models.User, error)

	// DeleteUser removes an account permanently. Admin token required.
	DeleteUser(ctx context.Context, req models.DeleteUserRequest) error
}
