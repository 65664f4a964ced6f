package service

import (
	"sync"

	"github.com/MKhiriev/go-user-hub/models"
)

const broadcastBuffer = 8

// sessionHub is an in-process publish/subscribe channel for session events.
// Every session manager in the process subscribes to the same hub, so a
// logout in one manager reaches all the others without any of them knowing
// how many peers exist.
type sessionHub struct {
	mu          sync.Mutex
	subscribers map[int]chan models.SessionEvent
	nextID      int
}

// NewSessionBroadcaster returns an empty hub ready for use.
func NewSessionBroadcaster() SessionBroadcaster {
	return &sessionHub{subscribers: make(map[int]chan models.SessionEvent)}
}

func (h *sessionHub) Publish(event models.SessionEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		// non-blocking send: a subscriber with a full buffer misses
		// the event rather than stalling the publisher
		select {
		case ch <- event:
		default:
		}
	}
}

func (h *sessionHub) Subscribe() (<-chan models.SessionEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.SessionEvent, broadcastBuffer)
	h.subscribers[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}
