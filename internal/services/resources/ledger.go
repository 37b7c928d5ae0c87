package resources

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// ApplyCosts implements Service
func (s *service) ApplyCosts(ctx context.Context, casterID string, sp *spell.Spell) error {
	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return apperr.Wrap(err, "failed to load caster for cost application")
	}

	mp := p.NormalizeMagicPoints() - sp.MPCost
	if mp < 0 {
		mp = 0
	}
	p.SetStat(player.StatMagicPoints, mp)

	if sp.RequiresLucidity() {
		lucidity := p.GetStat(player.StatLucidity) - sp.LucidityCost
		if lucidity < 0 {
			lucidity = 0
		}
		p.SetStat(player.StatLucidity, lucidity)
		p.AddStat(player.StatCorruption, sp.CorruptionOnCast)
	}

	if err := s.players.Save(ctx, p); err != nil {
		return apperr.Wrap(err, "failed to persist spell costs")
	}
	return nil
}

// RestoreMagicPoints implements Service
func (s *service) RestoreMagicPoints(ctx context.Context, casterID string, amount int) (int, error) {
	if amount < 0 {
		return 0, apperr.InvalidArgument("restore amount cannot be negative")
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return 0, apperr.Wrap(err, "failed to load caster for restoration")
	}

	before := p.NormalizeMagicPoints()
	after := before + amount
	if maximum := p.MaxMagicPoints(); after > maximum {
		after = maximum
	}
	if after < before {
		after = before
	}
	p.SetStat(player.StatMagicPoints, after)

	if err := s.players.Save(ctx, p); err != nil {
		return 0, apperr.Wrap(err, "failed to persist restoration")
	}
	return after - before, nil
}
