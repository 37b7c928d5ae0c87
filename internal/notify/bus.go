package notify

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/uuid"
)

// Listener processes notification events
type Listener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus fans events out to subscribed listeners. It implements Notifier, so it
// can sit directly behind the casting orchestrator.
type Bus struct {
	mu            sync.RWMutex
	listeners     map[EventKind][]Listener
	uuidGenerator uuid.Generator
}

// NewBus creates a new notification bus
func NewBus(generator uuid.Generator) *Bus {
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	return &Bus{
		listeners:     make(map[EventKind][]Listener),
		uuidGenerator: generator,
	}
}

// Subscribe adds a listener for a specific event kind
func (b *Bus) Subscribe(kind EventKind, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[kind] = append(b.listeners[kind], listener)

	sort.Slice(b.listeners[kind], func(i, j int) bool {
		return b.listeners[kind][i].Priority() < b.listeners[kind][j].Priority()
	})
}

// Unsubscribe removes a listener by id
func (b *Bus) Unsubscribe(kind EventKind, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[kind]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[kind] = append(listeners[:i], listeners[i+1:]...)
		return
	}
}

// Notify implements Notifier. Listener errors are logged and swallowed.
func (b *Bus) Notify(ctx context.Context, playerID string, kind EventKind, payload map[string]any) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners[kind]))
	copy(listeners, b.listeners[kind])
	b.mu.RUnlock()

	event := Event{
		ID:       b.uuidGenerator.New(),
		Kind:     kind,
		PlayerID: playerID,
		Payload:  payload,
	}

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			log.Printf("notify: listener %s failed on %s: %v", listener.ID(), kind, err)
		}
	}
}
