package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"id"`

	// Email is the unique user identifier used during authentication.
	// It is stored lowercase-normalized.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON and is used only for credential checks.
	PasswordHash string `json:"-"`

	// IsAdmin marks the account as an administrator. It defaults to false
	// and no public API path is allowed to set it.
	IsAdmin bool `json:"is_admin"`

	// ProfileImageURL is an optional reference to an externally hosted
	// avatar image. Only the URL is persisted, never the image bytes.
	ProfileImageURL string `json:"profile_image,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields will be updated.
type UserUpdate struct {
	// UserID is the unique identifier of the record to update. Required.
	UserID int64 `json:"id"`

	// Name is the new display name. If nil, the field is not updated.
	Name *string `json:"name,omitempty"`

	// Email is the new email address. If nil, the field is not updated.
	// A supplied value is re-validated and lowercase-normalized before it
	// reaches the store.
	Email *string `json:"email,omitempty"`

	// ProfileImageURL is the new avatar reference. If nil, the field is
	// not updated.
	ProfileImageURL *string `json:"profile_image,omitempty"`
}

// HasChanges reports whether the update carries at least one field to apply.
func (u UserUpdate) HasChanges() bool {
	return u.Name != nil || u.Email != nil || u.ProfileImageURL != nil
}
