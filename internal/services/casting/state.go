package casting

import (
	"sort"
	"sync"

	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
)

// CastingState is the authoritative record of one in-flight cast. Created by
// start, mutated only by progress, destroyed by completion or interruption.
type CastingState struct {
	CasterID         string
	SpellID          string
	SpellName        string
	DurationSeconds  float64
	StartTick        int64
	RemainingSeconds float64

	// CombatSessionID is set when the cast began inside a combat session
	CombatSessionID string

	// NextEligibleTick defers the countdown until the caster's combat turn.
	// While set, progress is frozen; once reached, the countdown restarts
	// from that tick.
	NextEligibleTick *int64

	MPCostSnapshot int
	Target         targeting.Match
	MasteryAtCast  int
}

// stateTable is the single owner of all CastingState entries. Every access
// goes through its mutex; at most one entry exists per caster, enforced at
// this boundary.
type stateTable struct {
	mu          sync.Mutex
	tickSeconds float64
	entries     map[string]*CastingState
}

func newStateTable(tickSeconds float64) *stateTable {
	return &stateTable{
		tickSeconds: tickSeconds,
		entries:     make(map[string]*CastingState),
	}
}

// start registers a new cast. A second start while one exists is rejected,
// never replaced.
func (t *stateTable) start(state *CastingState) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[state.CasterID]; exists {
		return apperr.AlreadyExistsf("caster '%s' is already casting", state.CasterID).
			WithMeta("caster_id", state.CasterID)
	}

	state.RemainingSeconds = state.DurationSeconds
	t.entries[state.CasterID] = state
	return nil
}

// isCasting reports whether the caster has an active entry
func (t *stateTable) isCasting(casterID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, exists := t.entries[casterID]
	return exists
}

// progress advances the countdown for one caster. It reports the remaining
// seconds and whether the cast has elapsed; ok is false when no entry
// exists, so a progress call after removal is a harmless no-op.
func (t *stateTable) progress(casterID string, currentTick int64) (remaining float64, complete, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.entries[casterID]
	if !exists {
		return 0, false, false
	}

	if entry.NextEligibleTick != nil {
		if currentTick < *entry.NextEligibleTick {
			return entry.RemainingSeconds, false, true
		}
		// Turn arrived: unfreeze and restart the countdown from here
		entry.NextEligibleTick = nil
		entry.StartTick = currentTick
	}

	elapsed := float64(currentTick-entry.StartTick) * t.tickSeconds
	remaining = entry.DurationSeconds - elapsed
	if remaining < 0 {
		remaining = 0
	}
	entry.RemainingSeconds = remaining

	return remaining, remaining <= 0, true
}

// complete removes and returns the entry, if any
func (t *stateTable) complete(casterID string) (*CastingState, bool) {
	return t.remove(casterID)
}

// interrupt removes and returns the entry, if any
func (t *stateTable) interrupt(casterID string) (*CastingState, bool) {
	return t.remove(casterID)
}

func (t *stateTable) remove(casterID string) (*CastingState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.entries[casterID]
	if !exists {
		return nil, false
	}
	delete(t.entries, casterID)
	return entry, true
}

// activeCasters returns the ids of everyone currently casting, sorted for
// deterministic sweeps
func (t *stateTable) activeCasters() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	casters := make([]string, 0, len(t.entries))
	for id := range t.entries {
		casters = append(casters, id)
	}
	sort.Strings(casters)
	return casters
}

// snapshot returns a copy of a caster's entry for read-only inspection
func (t *stateTable) snapshot(casterID string) (*CastingState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, exists := t.entries[casterID]
	if !exists {
		return nil, false
	}
	copied := *entry
	if entry.NextEligibleTick != nil {
		tick := *entry.NextEligibleTick
		copied.NextEligibleTick = &tick
	}
	return &copied, true
}
