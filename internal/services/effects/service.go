// Package effects applies a spell's mechanical consequence to a resolved
// target, scaled by the caster's mastery.
package effects

//go:generate mockgen -destination=mock/mock_service.go -package=mockeffects -source=service.go

import (
	"context"
	"fmt"
	"math"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
)

// Outcome reports what an applied effect did
type Outcome struct {
	Kind     spell.EffectKind
	Amount   int
	TargetID string
	Message  string
}

// DamageSink is the call boundary to the combat damage model. Damage and
// NPC-directed healing cross it; the model beyond is out of scope here.
type DamageSink interface {
	ApplyDamage(ctx context.Context, targetID string, amount int, damageType string) error
	Heal(ctx context.Context, targetID string, amount int) error
}

// Service applies spell effects
type Service interface {
	Apply(ctx context.Context, casterID string, target *targeting.Match, sp *spell.Spell, masteryValue int) (*Outcome, error)
}

type service struct {
	players players.Repository
	damage  DamageSink
}

// ServiceConfig holds configuration for the effect engine
type ServiceConfig struct {
	Players players.Repository
	Damage  DamageSink
}

// NewService creates a new effect engine
func NewService(cfg *ServiceConfig) Service {
	if cfg.Players == nil {
		panic("player repository is required")
	}
	if cfg.Damage == nil {
		panic("damage sink is required")
	}
	return &service{
		players: cfg.Players,
		damage:  cfg.Damage,
	}
}

// masteryModifier scales effect magnitude: ×1.0 at mastery 0 up to ×1.5 at
// mastery 100
func masteryModifier(masteryValue int) float64 {
	return 1.0 + float64(masteryValue)/200.0
}

func scaled(base, masteryValue int) int {
	return int(math.Round(float64(base) * masteryModifier(masteryValue)))
}

// Apply implements Service
func (s *service) Apply(ctx context.Context, casterID string, target *targeting.Match, sp *spell.Spell, masteryValue int) (*Outcome, error) {
	if target == nil {
		return nil, apperr.InvalidArgument("target cannot be nil")
	}

	switch effect := sp.Effect.(type) {
	case *spell.HealEffect:
		return s.applyHeal(ctx, target, effect, masteryValue)
	case *spell.DamageEffect:
		return s.applyDamage(ctx, target, effect, masteryValue)
	case *spell.StatusEffect:
		return s.applyStatus(ctx, target, effect, masteryValue)
	case *spell.StatModEffect:
		return s.applyStatMod(ctx, target, effect)
	case *spell.LucidityEffect:
		return s.applyLucidity(ctx, target, effect)
	case *spell.TeleportEffect:
		return s.applyTeleport(ctx, target, effect)
	case *spell.CreateObjectEffect:
		return s.applyCreateObject(ctx, casterID, effect)
	default:
		return nil, apperr.Validationf("spell %q has unhandled effect kind %q", sp.ID, sp.Effect.Kind())
	}
}

func (s *service) applyHeal(ctx context.Context, target *targeting.Match, effect *spell.HealEffect, masteryValue int) (*Outcome, error) {
	amount := scaled(effect.Amount, masteryValue)

	if target.Kind == targeting.MatchPlayer {
		p, err := s.players.Get(ctx, target.ID)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to load heal target")
		}

		health := p.GetStat(player.StatHealth) + amount
		if p.HasStat(player.StatMaxHealth) && health > p.GetStat(player.StatMaxHealth) {
			health = p.GetStat(player.StatMaxHealth)
		}
		p.SetStat(player.StatHealth, health)

		if err := s.players.Save(ctx, p); err != nil {
			return nil, apperr.Wrap(err, "failed to persist healing")
		}

		return &Outcome{
			Kind:     spell.EffectHeal,
			Amount:   amount,
			TargetID: target.ID,
			Message:  fmt.Sprintf("Healing energy knits %s's wounds for %d points.", target.Name, amount),
		}, nil
	}

	if err := s.damage.Heal(ctx, target.ID, amount); err != nil {
		return nil, apperr.Wrap(err, "failed to heal combatant")
	}
	return &Outcome{
		Kind:     spell.EffectHeal,
		Amount:   amount,
		TargetID: target.ID,
		Message:  fmt.Sprintf("Healing energy surrounds %s.", target.Name),
	}, nil
}

func (s *service) applyDamage(ctx context.Context, target *targeting.Match, effect *spell.DamageEffect, masteryValue int) (*Outcome, error) {
	amount := scaled(effect.Amount, masteryValue)

	// All damage crosses the combat boundary, player and NPC alike
	if err := s.damage.ApplyDamage(ctx, target.ID, amount, effect.DamageType); err != nil {
		return nil, apperr.Wrap(err, "failed to apply spell damage")
	}

	return &Outcome{
		Kind:     spell.EffectDamage,
		Amount:   amount,
		TargetID: target.ID,
		Message:  fmt.Sprintf("Eldritch force strikes %s for %d %s damage.", target.Name, amount, effect.DamageType),
	}, nil
}

func (s *service) applyStatus(ctx context.Context, target *targeting.Match, effect *spell.StatusEffect, masteryValue int) (*Outcome, error) {
	if target.Kind != targeting.MatchPlayer {
		return &Outcome{
			Kind:     spell.EffectStatus,
			TargetID: target.ID,
			Message:  fmt.Sprintf("%s is wreathed in unnatural energies.", target.Name),
		}, nil
	}

	p, err := s.players.Get(ctx, target.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load status target")
	}

	p.AddStatusEffect(player.ActiveStatus{
		Status:          effect.Status,
		DurationSeconds: effect.DurationSeconds,
		Intensity:       scaled(effect.Intensity, masteryValue),
	})
	if err := s.players.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "failed to persist status effect")
	}

	return &Outcome{
		Kind:     spell.EffectStatus,
		Amount:   effect.DurationSeconds,
		TargetID: target.ID,
		Message:  fmt.Sprintf("%s is afflicted by %s.", target.Name, effect.Status),
	}, nil
}

func (s *service) applyStatMod(ctx context.Context, target *targeting.Match, effect *spell.StatModEffect) (*Outcome, error) {
	if target.Kind != targeting.MatchPlayer {
		return &Outcome{
			Kind:     spell.EffectStatMod,
			TargetID: target.ID,
			Message:  fmt.Sprintf("The air shimmers around %s.", target.Name),
		}, nil
	}

	p, err := s.players.Get(ctx, target.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load stat-mod target")
	}

	p.AddStatusEffect(player.ActiveStatus{
		Status:          "stat_modification",
		DurationSeconds: effect.DurationSeconds,
		StatMods:        effect.Mods,
	})
	if err := s.players.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "failed to persist stat modification")
	}

	return &Outcome{
		Kind:     spell.EffectStatMod,
		Amount:   effect.DurationSeconds,
		TargetID: target.ID,
		Message:  fmt.Sprintf("%s is touched by transformative power.", target.Name),
	}, nil
}

func (s *service) applyLucidity(ctx context.Context, target *targeting.Match, effect *spell.LucidityEffect) (*Outcome, error) {
	if target.Kind != targeting.MatchPlayer {
		return &Outcome{
			Kind:     spell.EffectLucidity,
			TargetID: target.ID,
			Message:  "The spell finds no mind to touch.",
		}, nil
	}

	p, err := s.players.Get(ctx, target.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load lucidity target")
	}

	lucidity := p.GetStat(player.StatLucidity) + effect.LucidityDelta
	if lucidity < 0 {
		lucidity = 0
	}
	p.SetStat(player.StatLucidity, lucidity)
	if effect.CorruptionDelta != 0 {
		p.AddStat(player.StatCorruption, effect.CorruptionDelta)
	}

	if err := s.players.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "failed to persist lucidity adjustment")
	}

	return &Outcome{
		Kind:     spell.EffectLucidity,
		Amount:   effect.LucidityDelta,
		TargetID: target.ID,
		Message:  fmt.Sprintf("%s's grip on reality shifts.", target.Name),
	}, nil
}

func (s *service) applyTeleport(ctx context.Context, target *targeting.Match, effect *spell.TeleportEffect) (*Outcome, error) {
	if target.Kind != targeting.MatchPlayer {
		return &Outcome{
			Kind:     spell.EffectTeleport,
			TargetID: target.ID,
			Message:  "The spell cannot move that.",
		}, nil
	}

	p, err := s.players.Get(ctx, target.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load teleport target")
	}

	p.RoomID = effect.DestinationRoom
	if err := s.players.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "failed to persist relocation")
	}

	return &Outcome{
		Kind:     spell.EffectTeleport,
		TargetID: target.ID,
		Message:  fmt.Sprintf("Space folds, and %s is elsewhere.", target.Name),
	}, nil
}

func (s *service) applyCreateObject(ctx context.Context, casterID string, effect *spell.CreateObjectEffect) (*Outcome, error) {
	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load caster for conjuration")
	}

	quantity := effect.Quantity
	if quantity < 1 {
		quantity = 1
	}

	if idx := p.FindInventory(effect.PrototypeID); idx >= 0 {
		p.Inventory[idx].Quantity += quantity
	} else {
		p.Inventory = append(p.Inventory, player.InventoryItem{
			PrototypeID: effect.PrototypeID,
			Quantity:    quantity,
		})
	}

	if err := s.players.Save(ctx, p); err != nil {
		return nil, apperr.Wrap(err, "failed to persist conjured objects")
	}

	return &Outcome{
		Kind:     spell.EffectCreateObject,
		Amount:   quantity,
		TargetID: casterID,
		Message:  fmt.Sprintf("Matter coalesces out of nothing (%d× %s).", quantity, effect.PrototypeID),
	}, nil
}
