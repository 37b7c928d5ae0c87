// Package casting sequences the spellcasting engine: validation, pricing,
// targeting, the timed casting state machine, completion and interruption.
package casting

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/catalog"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/dice"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/notify"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/effects"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/mastery"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/materials"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/resources"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
)

type service struct {
	catalog    *catalog.Catalog
	players    players.Repository
	mastery    mastery.Service
	materials  materials.Service
	resources  resources.Service
	effects    effects.Service
	targeting  targeting.Service
	combat     targeting.CombatLookup
	clock      TickClock
	diceRoller dice.Roller
	notifier   notify.Notifier

	states *stateTable
	locks  *casterLocks
}

// ServiceConfig holds configuration for the casting orchestrator
type ServiceConfig struct {
	Catalog    *catalog.Catalog
	Players    players.Repository
	Mastery    mastery.Service
	Materials  materials.Service
	Resources  resources.Service
	Effects    effects.Service
	Targeting  targeting.Service
	Combat     targeting.CombatLookup
	Clock      TickClock
	DiceRoller dice.Roller
	Notifier   notify.Notifier

	// TickSeconds converts game-loop ticks to seconds (default 0.1). Fixed
	// for the life of the service, never varied per call.
	TickSeconds float64
}

// NewService creates a new casting orchestrator
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Players == nil {
		panic("player repository is required")
	}
	if cfg.Mastery == nil {
		panic("mastery service is required")
	}
	if cfg.Materials == nil {
		panic("material checker is required")
	}
	if cfg.Resources == nil {
		panic("resource ledger is required")
	}
	if cfg.Effects == nil {
		panic("effect engine is required")
	}
	if cfg.Targeting == nil {
		panic("targeting service is required")
	}
	if cfg.Combat == nil {
		panic("combat lookup is required")
	}
	if cfg.Clock == nil {
		panic("tick clock is required")
	}

	tickSeconds := cfg.TickSeconds
	if tickSeconds <= 0 {
		tickSeconds = 0.1
	}

	svc := &service{
		catalog:    cfg.Catalog,
		players:    cfg.Players,
		mastery:    cfg.Mastery,
		materials:  cfg.Materials,
		resources:  cfg.Resources,
		effects:    cfg.Effects,
		targeting:  cfg.Targeting,
		combat:     cfg.Combat,
		clock:      cfg.Clock,
		diceRoller: cfg.DiceRoller,
		notifier:   cfg.Notifier,
		states:     newStateTable(tickSeconds),
		locks:      newCasterLocks(),
	}
	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}
	if svc.notifier == nil {
		svc.notifier = notify.NewLogNotifier()
	}
	return svc
}

// IsCasting implements Service
func (s *service) IsCasting(casterID string) bool {
	return s.states.isCasting(casterID)
}

// ActiveCasters implements Service
func (s *service) ActiveCasters() []string {
	return s.states.activeCasters()
}

// CastingSnapshot implements Service
func (s *service) CastingSnapshot(casterID string) (*CastingState, bool) {
	return s.states.snapshot(casterID)
}

// CanCast implements Service
func (s *service) CanCast(ctx context.Context, casterID, spellIDOrName string) (bool, string, error) {
	sp, ok := s.catalog.Resolve(spellIDOrName)
	if !ok {
		return false, fmt.Sprintf("There is no spell called '%s'.", spellIDOrName), nil
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return false, "", apperr.Wrap(err, "failed to load caster")
	}

	reason, err := s.checkAffordability(ctx, p, sp)
	if err != nil {
		return false, "", err
	}
	if reason != "" {
		return false, reason, nil
	}
	return true, "", nil
}

// checkAffordability runs the ordered pre-cast checks: MP, lucidity,
// knowledge, materials. The first failure short-circuits with a readable
// reason; an empty reason means the cast may proceed.
func (s *service) checkAffordability(ctx context.Context, p *player.Player, sp *spell.Spell) (string, error) {
	mp := p.NormalizeMagicPoints()
	if mp < sp.MPCost {
		return fmt.Sprintf("You don't have enough magic points to cast %s (need %d, have %d).", sp.Name, sp.MPCost, mp), nil
	}

	if sp.RequiresLucidity() {
		if lucidity := p.GetStat(player.StatLucidity); lucidity < sp.LucidityCost {
			return fmt.Sprintf("Your mind is too frayed to cast %s (need %d lucidity, have %d).", sp.Name, sp.LucidityCost, lucidity), nil
		}
	}

	learned, err := s.mastery.IsLearned(ctx, p.ID, sp.ID)
	if err != nil {
		return "", apperr.Wrap(err, "failed to check spell knowledge")
	}
	if !learned {
		return fmt.Sprintf("You have not learned %s.", sp.Name), nil
	}

	missing, err := s.materials.Check(ctx, p.ID, sp)
	if err != nil {
		return "", apperr.Wrap(err, "failed to check materials")
	}
	if len(missing) > 0 {
		return fmt.Sprintf("You lack the materials for %s: %s.", sp.Name, strings.Join(missing, ", ")), nil
	}

	return "", nil
}

// CastSpell implements Service
func (s *service) CastSpell(ctx context.Context, input *CastInput) (*CastResult, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	unlock := s.locks.lock(input.CasterID)
	defer unlock()

	if s.states.isCasting(input.CasterID) {
		return &CastResult{Message: "You are already casting a spell."}, nil
	}

	sp, ok := s.catalog.Resolve(input.SpellIDOrName)
	if !ok {
		return &CastResult{Message: fmt.Sprintf("There is no spell called '%s'.", input.SpellIDOrName)}, nil
	}

	p, err := s.players.Get(ctx, input.CasterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load caster")
	}

	reason, err := s.checkAffordability(ctx, p, sp)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return &CastResult{SpellID: sp.ID, Message: reason}, nil
	}

	// Target failures abort before any cost is paid
	target, failure, err := s.targeting.ResolveTarget(ctx, p, sp, input.TargetName)
	if err != nil {
		return nil, err
	}
	if failure != "" {
		return &CastResult{SpellID: sp.ID, Message: failure}, nil
	}

	masteryValue, err := s.mastery.MasteryOf(ctx, input.CasterID, sp.ID)
	if err != nil {
		return nil, err
	}

	// Materials are consumed before the success roll: a failed roll is a
	// botched ritual, not an uninitiated one
	consumed, err := s.materials.Consume(ctx, input.CasterID, sp)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return &CastResult{
			SpellID: sp.ID,
			Message: fmt.Sprintf("Your components for %s crumble uselessly.", sp.Name),
		}, nil
	}

	roll, err := s.diceRoller.Percent()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll for success")
	}
	threshold := p.GetStat(player.StatIntelligence) + masteryValue

	if roll > threshold {
		if err := s.resources.ApplyCosts(ctx, input.CasterID, sp); err != nil {
			return nil, err
		}
		result := &CastResult{
			CostsPaid: true,
			Roll:      roll,
			SpellID:   sp.ID,
			TargetID:  target.ID,
			Message:   fmt.Sprintf("You fumble the incantation of %s; the gathered energies dissipate wasted.", sp.Name),
		}
		s.notifier.Notify(ctx, input.CasterID, notify.EventCastFailed, map[string]any{
			"spell_id": sp.ID,
			"roll":     roll,
		})
		return result, nil
	}

	if sp.IsInstant() {
		return s.resolveInstant(ctx, input.CasterID, sp, target, masteryValue, roll)
	}

	return s.beginTimedCast(ctx, p, sp, target, masteryValue, roll)
}

// resolveInstant prices and applies a zero-duration spell in one step
func (s *service) resolveInstant(ctx context.Context, casterID string, sp *spell.Spell, target *targeting.Match, masteryValue, roll int) (*CastResult, error) {
	if err := s.resources.ApplyCosts(ctx, casterID, sp); err != nil {
		return nil, err
	}

	outcome, err := s.effects.Apply(ctx, casterID, target, sp, masteryValue)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to apply spell effect")
	}

	if err := s.mastery.RecordCast(ctx, casterID, sp.ID); err != nil {
		log.Printf("casting: failed to record cast of %s by %s: %v", sp.ID, casterID, err)
	}
	if err := s.mastery.IncreaseMasteryOnCast(ctx, casterID, sp.ID, true); err != nil {
		log.Printf("casting: failed to advance mastery of %s for %s: %v", sp.ID, casterID, err)
	}

	message := fmt.Sprintf("You cast %s. %s", sp.Name, outcome.Message)
	s.notifier.Notify(ctx, casterID, notify.EventCastCompleted, map[string]any{
		"spell_id":  sp.ID,
		"target_id": outcome.TargetID,
		"message":   message,
	})
	s.notifyVitals(ctx, outcome)

	return &CastResult{
		Success:   true,
		CostsPaid: true,
		Roll:      roll,
		SpellID:   sp.ID,
		TargetID:  target.ID,
		Message:   message,
	}, nil
}

// beginTimedCast hands a positive-duration spell to the state machine.
// Costs are deferred to completion.
func (s *service) beginTimedCast(ctx context.Context, p *player.Player, sp *spell.Spell, target *targeting.Match, masteryValue, roll int) (*CastResult, error) {
	currentTick := s.clock.CurrentTick()

	state := &CastingState{
		CasterID:        p.ID,
		SpellID:         sp.ID,
		SpellName:       sp.Name,
		DurationSeconds: sp.CastingTimeSeconds,
		StartTick:       currentTick,
		MPCostSnapshot:  sp.MPCost,
		Target:          *target,
		MasteryAtCast:   masteryValue,
	}

	session, err := s.combat.ActiveSessionFor(ctx, p.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to look up combat session")
	}
	if session != nil {
		state.CombatSessionID = session.ID
		if !session.IsTurn(p.ID) {
			eligible := session.NextEligibleTick(currentTick)
			state.NextEligibleTick = &eligible
		}
	}

	if err := s.states.start(state); err != nil {
		// Unreachable under the per-caster lock, but the invariant belongs
		// to the state table, not to this call path
		return &CastResult{Message: "You are already casting a spell."}, nil
	}

	message := fmt.Sprintf("You begin casting %s...", sp.Name)
	if state.NextEligibleTick != nil {
		message = fmt.Sprintf("You begin casting %s, holding the pattern until your turn...", sp.Name)
	}
	s.notifier.Notify(ctx, p.ID, notify.EventCastStarted, map[string]any{
		"spell_id": sp.ID,
		"duration": sp.CastingTimeSeconds,
	})

	return &CastResult{
		Success:  true,
		Started:  true,
		Roll:     roll,
		SpellID:  sp.ID,
		TargetID: target.ID,
		Message:  message,
	}, nil
}

// CheckCastingProgress implements Service
func (s *service) CheckCastingProgress(ctx context.Context) error {
	currentTick := s.clock.CurrentTick()

	for _, casterID := range s.states.activeCasters() {
		_, complete, ok := s.states.progress(casterID, currentTick)
		if !ok || !complete {
			continue
		}
		s.completeCasting(ctx, casterID)
	}
	return nil
}

// notifyVitals tells any external health-display subscriber about healing
func (s *service) notifyVitals(ctx context.Context, outcome *effects.Outcome) {
	if outcome.Kind != spell.EffectHeal {
		return
	}
	s.notifier.Notify(ctx, outcome.TargetID, notify.EventVitalsUpdate, map[string]any{
		"healed": outcome.Amount,
	})
}
