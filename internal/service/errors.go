package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotAnAdmin          = errors.New("access denied: not an admin")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrImageTooLarge          = errors.New("profile image exceeds the size limit")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
)

// Client-side session errors.
var (
	// ErrNotLoggedIn is returned by session operations that require an
	// authenticated session slot when the slot is empty.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSessionOrphaned signals that the server no longer recognizes the
	// subject of a cached token. The holder must drop the session and
	// return to the login screen.
	ErrSessionOrphaned = errors.New("session no longer recognized by the server")

	// ErrAccessDenied is the client-side face of an HTTP 403 response.
	ErrAccessDenied = errors.New("access denied")
)
