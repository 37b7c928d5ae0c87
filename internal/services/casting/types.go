package casting

//go:generate mockgen -destination=mock/mock_clock.go -package=mockcasting -source=types.go

import (
	"context"
	"sync"
)

// TickClock exposes the external game loop's monotonic tick counter. The
// engine never advances it.
type TickClock interface {
	CurrentTick() int64
}

// CastInput identifies what a caster wants to cast, and at whom
type CastInput struct {
	CasterID      string
	SpellIDOrName string
	TargetName    string
}

// CastResult is the user-facing outcome of a cast attempt. Rejections are
// expected gameplay outcomes carried here, never as errors.
type CastResult struct {
	Success   bool
	Started   bool
	CostsPaid bool
	Roll      int
	SpellID   string
	TargetID  string
	Message   string
}

// InterruptResult is the outcome of an interruption attempt
type InterruptResult struct {
	Interrupted bool
	MPLost      bool
	Message     string
}

// Service is the casting orchestrator. CastSpell, InterruptCasting and
// CheckCastingProgress are the engine's entire public dependency surface;
// the rest are read-only accessors.
type Service interface {
	// CastSpell validates, prices and either resolves instantly or begins a
	// timed cast
	CastSpell(ctx context.Context, input *CastInput) (*CastResult, error)

	// InterruptCasting aborts an in-flight cast, with a LUCK check deciding
	// whether the caster forfeits the spell's MP cost
	InterruptCasting(ctx context.Context, casterID string) (*InterruptResult, error)

	// CheckCastingProgress advances every in-flight cast to the current tick
	// and completes those that elapsed, each exactly once
	CheckCastingProgress(ctx context.Context) error

	// CanCast reports whether the caster could start the spell right now,
	// with a user-facing reason when not
	CanCast(ctx context.Context, casterID, spellIDOrName string) (bool, string, error)

	// IsCasting reports whether the caster has an in-flight cast
	IsCasting(casterID string) bool

	// ActiveCasters lists everyone currently casting
	ActiveCasters() []string

	// CastingSnapshot returns a read-only copy of a caster's in-flight state
	CastingSnapshot(casterID string) (*CastingState, bool)
}

// casterLocks serializes casting operations per caster so no two calls for
// the same caster interleave mid-body. Across casters no ordering is
// guaranteed.
type casterLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCasterLocks() *casterLocks {
	return &casterLocks{locks: make(map[string]*sync.Mutex)}
}

func (c *casterLocks) lock(casterID string) func() {
	c.mu.Lock()
	l, ok := c.locks[casterID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[casterID] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}
