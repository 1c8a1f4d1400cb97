package events

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
)

const (
	// TypeSelectionChanged is emitted after a successful selection toggle.
	TypeSelectionChanged = "selection_changed"

	subscriberBuffer = 16
)

// Event is delivered to subscribers.
type Event struct {
	Type      string          `json:"type"`
	Pokemon   pokemon.Pokemon `json:"pokemon"`
	Timestamp int64           `json:"timestamp"`
}

// Hub fans selection changes out to live subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]chan Event)}
}

// Subscribe registers a new listener. The returned cancel func must be called
// once the caller stops reading; it closes the channel.
func (h *Hub) Subscribe() (string, <-chan Event, func()) {
	id := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return id, ch, cancel
}

// Publish implements catalog.Publisher. Slow subscribers miss events rather
// than block the toggle.
func (h *Hub) Publish(p pokemon.Pokemon) {
	event := Event{
		Type:      TypeSelectionChanged,
		Pokemon:   p.Clone(),
		Timestamp: time.Now().UnixMilli(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("[events] dropping event for slow subscriber=%s", id)
		}
	}
}

// Subscribers returns the number of live subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
