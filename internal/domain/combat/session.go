// Package combat exposes the snapshot of a combat session the spellcasting
// engine needs: who is fighting, whose turn it is, and when the next turn
// begins. The turn scheduler itself lives outside this module.
package combat

// ParticipantKind distinguishes players from NPCs in a session
type ParticipantKind string

const (
	ParticipantPlayer ParticipantKind = "player"
	ParticipantNPC    ParticipantKind = "npc"
)

// Participant is one combatant in a session
type Participant struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Kind ParticipantKind `json:"kind"`
}

// Session is a read-only view of an active combat session
type Session struct {
	ID                string        `json:"id"`
	Participants      []Participant `json:"participants"`
	CurrentTurnID     string        `json:"current_turn_id"`
	NextTurnTick      int64         `json:"next_turn_tick"`
	TurnIntervalTicks int64         `json:"turn_interval_ticks"`
}

// IsTurn reports whether it is the given participant's turn
func (s *Session) IsTurn(participantID string) bool {
	return s.CurrentTurnID == participantID
}

// OpponentOf returns the first participant other than the given one, or nil
func (s *Session) OpponentOf(participantID string) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID != participantID {
			return &s.Participants[i]
		}
	}
	return nil
}

// NextEligibleTick derives the tick at which a participant may begin acting.
// A session whose advertised next-turn tick is not in the future is stale;
// the fallback is one turn interval from now.
func (s *Session) NextEligibleTick(currentTick int64) int64 {
	if s.NextTurnTick > currentTick {
		return s.NextTurnTick
	}
	return currentTick + s.TurnIntervalTicks
}
