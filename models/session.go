package models

import "time"

// SessionClass distinguishes the two independent client-side sessions a
// browser may hold at the same time: the regular user session and the admin
// session. Each class has its own cached token and identity.
type SessionClass string

const (
	// SessionClassUser is the end-user session.
	SessionClassUser SessionClass = "user"

	// SessionClassAdmin is the administrator session.
	SessionClassAdmin SessionClass = "admin"
)

// Session is a snapshot of one cached client-side session: the bearer token
// together with the identity it was issued for. It is persisted to the local
// session cache and mirrored into the in-memory session state.
type Session struct {
	// Class identifies which session slot the snapshot belongs to.
	Class SessionClass `json:"class"`

	// Token is the compact serialized bearer token.
	Token string `json:"token"`

	// User is the cached public identity projection.
	User User `json:"user"`

	// UpdatedAt records when the snapshot was last written to the cache.
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionEvent is the cross-tab broadcast payload. Tabs publish a logout
// event when the user logs out locally; every other tab that receives the
// event clears its own state without re-publishing.
type SessionEvent struct {
	// Class identifies which session slot the event concerns.
	Class SessionClass `json:"class"`

	// SourceTabID identifies the tab that published the event. Receivers
	// ignore events carrying their own tab ID.
	SourceTabID string `json:"source_tab_id"`
}
