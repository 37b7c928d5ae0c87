// Package materials verifies and consumes the inventory-backed components a
// spell requires.
package materials

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
)

// Service checks and consumes spell materials
type Service interface {
	// Check returns the ids of required materials the caster does not carry.
	// An empty slice means the caster is fully equipped.
	Check(ctx context.Context, casterID string, sp *spell.Spell) ([]string, error)

	// Consume removes one unit of each consumed material from the caster's
	// inventory, persisting once. It returns false without persisting when
	// any required material is absent at consumption time.
	Consume(ctx context.Context, casterID string, sp *spell.Spell) (bool, error)
}

type service struct {
	players players.Repository
}

// ServiceConfig holds configuration for the material checker
type ServiceConfig struct {
	Players players.Repository
}

// NewService creates a new material checker
func NewService(cfg *ServiceConfig) Service {
	if cfg.Players == nil {
		panic("player repository is required")
	}
	return &service{players: cfg.Players}
}

// Check implements Service
func (s *service) Check(ctx context.Context, casterID string, sp *spell.Spell) ([]string, error) {
	if len(sp.Materials) == 0 {
		return nil, nil
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load caster for material check")
	}

	var missing []string
	for _, material := range sp.Materials {
		if p.FindInventory(material.ItemID) < 0 {
			missing = append(missing, material.ItemID)
		}
	}
	return missing, nil
}

// Consume implements Service
func (s *service) Consume(ctx context.Context, casterID string, sp *spell.Spell) (bool, error) {
	if len(sp.Materials) == 0 {
		return true, nil
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return false, apperr.Wrap(err, "failed to load caster for material consumption")
	}

	// Re-scan first: nothing is mutated unless every requirement is present
	for _, material := range sp.Materials {
		if p.FindInventory(material.ItemID) < 0 {
			return false, nil
		}
	}

	for _, material := range sp.Materials {
		if !material.Consumed {
			continue
		}
		if idx := p.FindInventory(material.ItemID); idx >= 0 {
			p.RemoveInventoryAt(idx)
		}
	}

	if err := s.players.Save(ctx, p); err != nil {
		return false, apperr.Wrap(err, "failed to persist material consumption")
	}
	return true, nil
}
