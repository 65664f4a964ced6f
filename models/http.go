package models

// RegisterRequest is the request body accepted by the registration endpoint
// and by the admin add-user endpoint. All three fields are required.
type RegisterRequest struct {
	// Name is the display name of the new account.
	Name string `json:"name"`

	// Email is the unique email address of the new account.
	// It is validated for a basic local@domain.tld shape and
	// lowercase-normalized before storage.
	Email string `json:"email"`

	// Password is the plaintext password supplied by the caller.
	// It is hashed immediately and never persisted or echoed back.
	Password string `json:"password"`
}

// LoginRequest is the request body accepted by both the user and the admin
// login endpoints.
type LoginRequest struct {
	// Email is the address the account was registered with.
	Email string `json:"email"`

	// Password is the plaintext password to verify against the stored hash.
	Password string `json:"password"`
}

// UpdateDataRequest is the request body of the profile update endpoint and
// of the admin update endpoint. Absent fields are left unchanged.
type UpdateDataRequest struct {
	// UserID identifies the record to update. For the profile endpoint it
	// comes from the URL; the admin endpoint carries it in the body.
	UserID int64 `json:"id,omitempty"`

	// Name is the new display name, if present.
	Name *string `json:"name,omitempty"`

	// Email is the new email address, if present.
	Email *string `json:"email,omitempty"`
}

// DeleteUserRequest is the request body of the admin delete endpoint.
type DeleteUserRequest struct {
	// UserID identifies the record to delete.
	UserID int64 `json:"id"`
}
