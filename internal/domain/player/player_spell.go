package player

import "time"

// MaxMastery is the mastery ceiling for any learned spell
const MaxMastery = 100

// PlayerSpell is one persisted player-knows-spell row. Created by learning,
// mutated by mastery progression and cast recording, never silently removed.
type PlayerSpell struct {
	PlayerID   string     `json:"player_id"`
	SpellID    string     `json:"spell_id"`
	Mastery    int        `json:"mastery"`
	TimesCast  int        `json:"times_cast"`
	LearnedAt  time.Time  `json:"learned_at"`
	LastCastAt *time.Time `json:"last_cast_at,omitempty"`
}

// AddMastery adjusts mastery by gain, clamped to [0, MaxMastery]
func (ps *PlayerSpell) AddMastery(gain int) {
	ps.Mastery += gain
	if ps.Mastery > MaxMastery {
		ps.Mastery = MaxMastery
	}
	if ps.Mastery < 0 {
		ps.Mastery = 0
	}
}

// RecordCast updates the cast counters
func (ps *PlayerSpell) RecordCast(at time.Time) {
	ps.TimesCast++
	ps.LastCastAt = &at
}
