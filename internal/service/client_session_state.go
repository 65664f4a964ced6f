package service

import "github.com/MKhiriev/go-user-hub/models"

// SessionStatus is the lifecycle state of one session slot.
type SessionStatus int

const (
	// StateAnonymous means the slot holds no session.
	StateAnonymous SessionStatus = iota

	// StateAuthenticated means the slot holds a live session snapshot.
	StateAuthenticated
)

// sessionState is the in-memory snapshot of one session slot. Values are
// immutable: every change goes through a transition function that returns a
// new state, so slot updates are a single assignment under the manager's
// lock.
type sessionState struct {
	Status  SessionStatus
	Session models.Session
}

// openSession transitions any state to authenticated with the given session.
func openSession(session models.Session) sessionState {
	return sessionState{Status: StateAuthenticated, Session: session}
}

// closeSession transitions any state to anonymous. Closing an anonymous
// slot yields the same anonymous state, which keeps logout idempotent.
func closeSession(sessionState) sessionState {
	return sessionState{Status: StateAnonymous}
}

// refreshIdentity replaces the cached identity of an authenticated slot.
// An anonymous slot is returned unchanged: a stale identity refresh must
// never resurrect a closed session.
func refreshIdentity(s sessionState, user models.User) sessionState {
	if s.Status != StateAuthenticated {
		return s
	}
	s.Session.User = user
	return s
}
