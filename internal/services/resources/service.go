// Package resources owns the spell resource ledger: cost application,
// restoration, and time-based magic point regeneration.
package resources

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
)

// Position multipliers for passive regeneration, and the bulk multipliers
// for the rest/meditation entry points.
const (
	multiplierStanding = 1.0
	multiplierSitting  = 3.0
	multiplierLying    = 3.6

	multiplierResting    = 3.6
	multiplierMeditating = 5.0
)

// Service applies and restores spell resource costs
type Service interface {
	// ApplyCosts subtracts the spell's MP cost (floor 0) and, for
	// lucidity-requiring mythos spells, drains lucidity and accrues
	// corruption. One save per call.
	ApplyCosts(ctx context.Context, casterID string, sp *spell.Spell) error

	// RestoreMagicPoints adds amount to the pool, capped at the computed
	// maximum, and returns the delta actually applied
	RestoreMagicPoints(ctx context.Context, casterID string, amount int) (int, error)

	// RegenTick advances one tick of passive regeneration, scaled by the
	// caster's position. Returns the whole magic points gained.
	RegenTick(ctx context.Context, casterID string) (int, error)

	// Rest applies the resting regeneration rate over an explicit duration
	Rest(ctx context.Context, casterID string, durationSeconds float64) (int, error)

	// Meditate applies the meditation regeneration rate over an explicit
	// duration
	Meditate(ctx context.Context, casterID string, durationSeconds float64) (int, error)
}

type service struct {
	players       players.Repository
	baseRegenRate float64
	tickSeconds   float64
}

// ServiceConfig holds configuration for the resource ledger
type ServiceConfig struct {
	Players players.Repository

	// BaseRegenRate is the MP regained per tick while standing (default 0.5)
	BaseRegenRate float64

	// TickSeconds converts ticks to seconds (default 0.1)
	TickSeconds float64
}

// NewService creates a new resource ledger
func NewService(cfg *ServiceConfig) Service {
	if cfg.Players == nil {
		panic("player repository is required")
	}

	svc := &service{
		players:       cfg.Players,
		baseRegenRate: cfg.BaseRegenRate,
		tickSeconds:   cfg.TickSeconds,
	}
	if svc.baseRegenRate <= 0 {
		svc.baseRegenRate = 0.5
	}
	if svc.tickSeconds <= 0 {
		svc.tickSeconds = 0.1
	}
	return svc
}
