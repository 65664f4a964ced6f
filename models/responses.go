package models

// AuthResponse is the success envelope returned by the register, login, and
// admin-login endpoints. Token carries the compact JWS string; User is the
// public projection of the account (its password hash is never serialized,
// see [User.PasswordHash]).
type AuthResponse struct {
	// Message is a short human-readable status line shown by the client UI.
	Message string `json:"message"`

	// Token is the freshly issued bearer token in compact serialized form.
	Token string `json:"token"`

	// User is the public projection of the authenticated account.
	// The admin-login endpoint serializes it under the "admin" key instead;
	// see [AdminAuthResponse].
	User User `json:"user"`
}

// AdminAuthResponse is the success envelope of the admin login endpoint.
// It mirrors [AuthResponse] but exposes the account under the "admin" key,
// matching what the administrative UI expects.
type AdminAuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Admin   User   `json:"admin"`
}

// UserResponse is the envelope returned by mutation endpoints that echo the
// updated account back to the caller.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UsersResponse is the envelope of the admin listing endpoint.
type UsersResponse struct {
	// Data holds every user account ordered by creation time, newest first.
	// Password hashes are stripped by the [User] JSON projection.
	Data []User `json:"data"`
}

// MessageResponse is the envelope for endpoints that return only a status
// line (e.g. admin delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope. Error carries a short,
// client-safe description; internal failure detail stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}
