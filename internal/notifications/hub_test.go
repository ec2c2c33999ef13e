package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку события подписчику сессии.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	ch, unsubscribe := hub.Subscribe(sessionID)
	defer unsubscribe()

	hub.Publish(sessionID, Event{Type: EventStageChanged})

	select {
	case event := <-ch:
		if event.Type != EventStageChanged {
			t.Fatalf("expected stage_changed, got %s", event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubIsolatesSessions проверяет, что чужая сессия не получает событий.
func TestHubIsolatesSessions(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe(uuid.New())
	defer unsubscribe()

	hub.Publish(uuid.New(), Event{Type: EventSubmitCompleted})

	select {
	case event := <-ch:
		t.Fatalf("expected no event, got %s", event.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	sessionID := uuid.New()

	ch, unsubscribe := hub.Subscribe(sessionID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}
