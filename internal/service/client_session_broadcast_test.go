package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-user-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewSessionBroadcaster()

	first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	hub.Publish(models.SessionEvent{Class: models.SessionClassUser, SourceTabID: "tab-1"})

	for _, ch := range []<-chan models.SessionEvent{first, second} {
		select {
		case event := <-ch:
			assert.Equal(t, "tab-1", event.SourceTabID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestSessionHub_CancelClosesChannel(t *testing.T) {
	hub := NewSessionBroadcaster()

	events, cancel := hub.Subscribe()
	cancel()

	_, open := <-events
	assert.False(t, open, "cancelled subscription channel must be closed")

	// publishing after cancel must not panic or block
	assert.NotPanics(t, func() {
		hub.Publish(models.SessionEvent{Class: models.SessionClassUser, SourceTabID: "tab-1"})
	})
}

func TestSessionHub_CancelTwiceIsSafe(t *testing.T) {
	hub := NewSessionBroadcaster()

	_, cancel := hub.Subscribe()
	cancel()
	assert.NotPanics(t, cancel)
}

func TestSessionHub_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	hub := NewSessionBroadcaster()

	// never drained; the buffer fills and further events are dropped
	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < broadcastBuffer*2; i++ {
			hub.Publish(models.SessionEvent{Class: models.SessionClassUser, SourceTabID: "tab-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestSessionHub_DrainedSubscriberSeesEventsInOrder(t *testing.T) {
	hub := NewSessionBroadcaster()

	events, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(models.SessionEvent{Class: models.SessionClassUser, SourceTabID: "tab-1"})
	hub.Publish(models.SessionEvent{Class: models.SessionClassAdmin, SourceTabID: "tab-1"})

	require.Equal(t, models.SessionClassUser, (<-events).Class)
	require.Equal(t, models.SessionClassAdmin, (<-events).Class)
}
