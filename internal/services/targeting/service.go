// Package targeting converts a spell's target requirement plus an optional
// caster-supplied name into a concrete validated target.
package targeting

import (
	"context"
	"fmt"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// Service resolves spell targets
type Service interface {
	// ResolveTarget resolves the target for a cast. A non-empty reason means
	// the cast must be rejected with that user-facing message; the error is
	// reserved for collaborator failures.
	ResolveTarget(ctx context.Context, caster *player.Player, sp *spell.Spell, targetName string) (*Match, string, error)
}

type service struct {
	resolver NameResolver
	combat   CombatLookup
}

// ServiceConfig holds configuration for the targeting service
type ServiceConfig struct {
	Resolver NameResolver
	Combat   CombatLookup
}

// NewService creates a new targeting service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Resolver == nil {
		panic("name resolver is required")
	}
	if cfg.Combat == nil {
		panic("combat lookup is required")
	}

	return &service{
		resolver: cfg.Resolver,
		combat:   cfg.Combat,
	}
}

// ResolveTarget implements Service
func (s *service) ResolveTarget(ctx context.Context, caster *player.Player, sp *spell.Spell, targetName string) (*Match, string, error) {
	if caster == nil {
		return nil, "", apperr.InvalidArgument("caster cannot be nil")
	}

	switch sp.Target {
	case spell.TargetSelf:
		// Self-only spells ignore any supplied name
		return &Match{
			ID:     caster.ID,
			Name:   caster.Name,
			Kind:   MatchPlayer,
			RoomID: caster.RoomID,
		}, "", nil

	case spell.TargetArea, spell.TargetAll:
		// Area spells anchor a pseudo-target at the caster's room
		return &Match{
			ID:     caster.RoomID,
			Name:   "the surrounding area",
			Kind:   MatchArea,
			RoomID: caster.RoomID,
		}, "", nil

	case spell.TargetEntity, spell.TargetLocation:
		if targetName == "" {
			return s.autoTarget(ctx, caster, sp)
		}
		return s.resolveNamed(ctx, caster, sp, targetName)

	default:
		return nil, "", apperr.Validationf("spell %q has unknown target kind %q", sp.ID, sp.Target)
	}
}

// autoTarget picks the caster's current combat opponent when no name was
// supplied
func (s *service) autoTarget(ctx context.Context, caster *player.Player, sp *spell.Spell) (*Match, string, error) {
	session, err := s.combat.ActiveSessionFor(ctx, caster.ID)
	if err != nil {
		return nil, "", apperr.Wrap(err, "failed to look up combat session")
	}

	if session != nil {
		if opponent := session.OpponentOf(caster.ID); opponent != nil {
			kind := MatchNPC
			if opponent.Kind == "player" {
				kind = MatchPlayer
			}
			return &Match{
				ID:     opponent.ID,
				Name:   opponent.Name,
				Kind:   kind,
				RoomID: caster.RoomID,
			}, "", nil
		}
	}

	return nil, fmt.Sprintf("%s requires a target.", sp.Name), nil
}

// resolveNamed delegates to the general world resolver
func (s *service) resolveNamed(ctx context.Context, caster *player.Player, sp *spell.Spell, targetName string) (*Match, string, error) {
	match, err := s.resolver.Resolve(ctx, caster, targetName)
	if err != nil {
		return nil, "", apperr.Wrap(err, "failed to resolve target name")
	}
	if match == nil {
		return nil, fmt.Sprintf("You don't see '%s' here.", targetName), nil
	}

	// An entity-target spell aimed at a room is a user error, not a cast
	if sp.Target == spell.TargetEntity && (match.Kind == MatchRoom || match.Kind == MatchArea) {
		return nil, fmt.Sprintf("%s must be cast at a living target.", sp.Name), nil
	}

	return match, "", nil
}
