package resources

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// RegenTick implements Service
func (s *service) RegenTick(ctx context.Context, casterID string) (int, error) {
	return s.regenerate(ctx, casterID, positionMultiplier, 1)
}

// Rest implements Service
func (s *service) Rest(ctx context.Context, casterID string, durationSeconds float64) (int, error) {
	return s.bulkRegenerate(ctx, casterID, multiplierResting, durationSeconds)
}

// Meditate implements Service
func (s *service) Meditate(ctx context.Context, casterID string, durationSeconds float64) (int, error) {
	return s.bulkRegenerate(ctx, casterID, multiplierMeditating, durationSeconds)
}

func (s *service) bulkRegenerate(ctx context.Context, casterID string, multiplier, durationSeconds float64) (int, error) {
	if durationSeconds < 0 {
		return 0, apperr.InvalidArgument("duration cannot be negative")
	}
	ticks := durationSeconds / s.tickSeconds
	fixed := func(*player.Player) float64 { return multiplier }
	return s.regenerate(ctx, casterID, fixed, ticks)
}

// regenerate advances the fractional accumulator by rate×ticks and moves any
// whole points into the integer pool, never exceeding the computed maximum.
// All regeneration paths funnel through here so capacity cannot disagree.
func (s *service) regenerate(ctx context.Context, casterID string, multiplier func(*player.Player) float64, ticks float64) (int, error) {
	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return 0, apperr.Wrap(err, "failed to load player for regeneration")
	}

	mp := p.NormalizeMagicPoints()
	maximum := p.MaxMagicPoints()

	remainder := p.MPRemainder + s.baseRegenRate*multiplier(p)*ticks
	whole := int(remainder)
	remainder -= float64(whole)

	gained := 0
	if whole > 0 && mp < maximum {
		gained = whole
		if mp+gained > maximum {
			gained = maximum - mp
		}
		p.SetStat(player.StatMagicPoints, mp+gained)
	}
	p.MPRemainder = remainder

	if err := s.players.Save(ctx, p); err != nil {
		return 0, apperr.Wrap(err, "failed to persist regeneration")
	}
	return gained, nil
}

// positionMultiplier returns the passive regen multiplier for the player's
// posture. Unknown positions regen as standing.
func positionMultiplier(p *player.Player) float64 {
	switch p.Position {
	case player.PositionSitting:
		return multiplierSitting
	case player.PositionLying:
		return multiplierLying
	default:
		return multiplierStanding
	}
}
