// Package notify carries gameplay notifications out of the spellcasting
// engine. Delivery is fire-and-forget: failures are logged and swallowed,
// never surfaced as cast failures.
package notify

import (
	"context"
	"log"
)

// EventKind identifies a notification event
type EventKind string

const (
	EventCastStarted     EventKind = "cast_started"
	EventCastCompleted   EventKind = "cast_completed"
	EventCastFailed      EventKind = "cast_failed"
	EventCastInterrupted EventKind = "cast_interrupted"
	EventSpellLearned    EventKind = "spell_learned"
	EventVitalsUpdate    EventKind = "vitals_update"
)

// Event is one notification addressed to a player
type Event struct {
	ID       string
	Kind     EventKind
	PlayerID string
	Payload  map[string]any
}

// Notifier delivers events to whoever is listening
type Notifier interface {
	Notify(ctx context.Context, playerID string, kind EventKind, payload map[string]any)
}

// LogNotifier writes events to the process log. Useful as a default when no
// subscriber transport is wired.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements Notifier
func (n *LogNotifier) Notify(ctx context.Context, playerID string, kind EventKind, payload map[string]any) {
	log.Printf("notify: player=%s kind=%s payload=%v", playerID, kind, payload)
}
