package events_test

import (
	"testing"
	"time"

	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
	"github.com/zhouzirui/pokedex/backend/internal/service/events"
)

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := events.NewHub()
	_, first, cancelFirst := hub.Subscribe()
	defer cancelFirst()
	_, second, cancelSecond := hub.Subscribe()
	defer cancelSecond()

	hub.Publish(pokemon.Pokemon{Number: 7, Name: "Squirtle", Selected: true})

	for _, ch := range []<-chan events.Event{first, second} {
		select {
		case event := <-ch:
			if event.Type != events.TypeSelectionChanged || event.Pokemon.Number != 7 {
				t.Fatalf("unexpected event %+v", event)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := events.NewHub()
	_, ch, cancel := hub.Subscribe()
	if hub.Subscribers() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.Subscribers())
	}

	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	if hub.Subscribers() != 0 {
		t.Fatalf("expected 0 subscribers, got %d", hub.Subscribers())
	}

	// publishing with no subscribers must not panic
	hub.Publish(pokemon.Pokemon{Number: 1})
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := events.NewHub()
	_, ch, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		hub.Publish(pokemon.Pokemon{Number: i})
	}

	if len(ch) == 0 || len(ch) == 100 {
		t.Fatalf("expected a bounded buffer, got %d queued", len(ch))
	}
}
