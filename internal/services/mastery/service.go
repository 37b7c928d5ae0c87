// Package mastery tracks spell acquisition and per-spell proficiency
// progression.
package mastery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/catalog"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/dice"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/spellbook"
)

// LearnResult reports the outcome of a learn attempt. Rejections are
// expected gameplay outcomes, not errors.
type LearnResult struct {
	Learned      bool
	AlreadyKnown bool
	SpellID      string
	Message      string
}

// KnownSpell pairs a spellbook row with its catalog entry
type KnownSpell struct {
	Row   *player.PlayerSpell
	Spell *spell.Spell
}

// Service tracks spell learning and mastery progression
type Service interface {
	// LearnSpell teaches the caster a spell after prerequisite checks,
	// applying learn-time corruption for mythos spells
	LearnSpell(ctx context.Context, casterID, spellIDOrName, source string) (*LearnResult, error)

	// IsLearned reports whether the caster knows the spell
	IsLearned(ctx context.Context, casterID, spellID string) (bool, error)

	// MasteryOf returns the caster's mastery of a spell, zero when unknown
	MasteryOf(ctx context.Context, casterID, spellID string) (int, error)

	// RecordCast updates the cast counters on the spellbook row
	RecordCast(ctx context.Context, casterID, spellID string) error

	// IncreaseMasteryOnCast advances mastery after a successful cast
	IncreaseMasteryOnCast(ctx context.Context, casterID, spellID string, succeeded bool) error

	// KnownSpells lists everything the caster has learned, joined with the
	// catalog
	KnownSpells(ctx context.Context, casterID string) ([]*KnownSpell, error)
}

type service struct {
	catalog    *catalog.Catalog
	players    players.Repository
	spellbook  spellbook.Repository
	diceRoller dice.Roller
}

// ServiceConfig holds configuration for the mastery tracker
type ServiceConfig struct {
	Catalog    *catalog.Catalog
	Players    players.Repository
	Spellbook  spellbook.Repository
	DiceRoller dice.Roller
}

// NewService creates a new mastery tracker
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Players == nil {
		panic("player repository is required")
	}
	if cfg.Spellbook == nil {
		panic("spellbook repository is required")
	}

	svc := &service{
		catalog:    cfg.Catalog,
		players:    cfg.Players,
		spellbook:  cfg.Spellbook,
		diceRoller: cfg.DiceRoller,
	}
	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}
	return svc
}

// LearnSpell implements Service
func (s *service) LearnSpell(ctx context.Context, casterID, spellIDOrName, source string) (*LearnResult, error) {
	sp, ok := s.catalog.Resolve(spellIDOrName)
	if !ok {
		return &LearnResult{
			Message: fmt.Sprintf("You have never heard of a spell called '%s'.", spellIDOrName),
		}, nil
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load caster for learning")
	}

	if _, getErr := s.spellbook.Get(ctx, casterID, sp.ID); getErr == nil {
		return &LearnResult{
			AlreadyKnown: true,
			SpellID:      sp.ID,
			Message:      fmt.Sprintf("You already know %s.", sp.Name),
		}, nil
	} else if !apperr.IsNotFound(getErr) {
		return nil, apperr.Wrap(getErr, "failed to check existing spellbook row")
	}

	if reason := s.checkPrerequisites(ctx, p, sp); reason != "" {
		return &LearnResult{SpellID: sp.ID, Message: reason}, nil
	}

	row := &player.PlayerSpell{
		PlayerID:  casterID,
		SpellID:   sp.ID,
		Mastery:   0,
		LearnedAt: time.Now().UTC(),
	}
	if err := s.spellbook.Create(ctx, row); err != nil {
		if apperr.IsAlreadyExists(err) {
			return &LearnResult{
				AlreadyKnown: true,
				SpellID:      sp.ID,
				Message:      fmt.Sprintf("You already know %s.", sp.Name),
			}, nil
		}
		return nil, apperr.Wrap(err, "failed to record learned spell")
	}

	message := fmt.Sprintf("You have learned %s.", sp.Name)
	if sp.IsMythos() && sp.CorruptionOnLearn > 0 {
		p.AddStat(player.StatCorruption, sp.CorruptionOnLearn)
		if err := s.players.Save(ctx, p); err != nil {
			return nil, apperr.Wrap(err, "failed to persist learn-time corruption")
		}
		message = fmt.Sprintf("You have learned %s. Forbidden knowledge settles into your mind.", sp.Name)
	}

	return &LearnResult{Learned: true, SpellID: sp.ID, Message: message}, nil
}

// checkPrerequisites returns a user-facing rejection reason, empty when the
// caster qualifies. Each unmet requirement is a distinct reason.
func (s *service) checkPrerequisites(ctx context.Context, p *player.Player, sp *spell.Spell) string {
	if sp.Prerequisites == nil {
		return ""
	}

	statNames := make([]string, 0, len(sp.Prerequisites.MinStats))
	for name := range sp.Prerequisites.MinStats {
		statNames = append(statNames, name)
	}
	sort.Strings(statNames)
	for _, name := range statNames {
		if required := sp.Prerequisites.MinStats[name]; p.GetStat(name) < required {
			return fmt.Sprintf("%s requires %s of at least %d.", sp.Name, strings.ReplaceAll(name, "_", " "), required)
		}
	}

	for _, requiredID := range sp.Prerequisites.RequiredSpells {
		if _, err := s.spellbook.Get(ctx, p.ID, requiredID); apperr.IsNotFound(err) {
			name := requiredID
			if required, ok := s.catalog.GetByID(requiredID); ok {
				name = required.Name
			}
			return fmt.Sprintf("%s requires knowledge of %s first.", sp.Name, name)
		}
	}

	return ""
}

// IsLearned implements Service
func (s *service) IsLearned(ctx context.Context, casterID, spellID string) (bool, error) {
	_, err := s.spellbook.Get(ctx, casterID, spellID)
	if err == nil {
		return true, nil
	}
	if apperr.IsNotFound(err) {
		return false, nil
	}
	return false, apperr.Wrap(err, "failed to check spellbook")
}

// MasteryOf implements Service
func (s *service) MasteryOf(ctx context.Context, casterID, spellID string) (int, error) {
	row, err := s.spellbook.Get(ctx, casterID, spellID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return 0, nil
		}
		return 0, apperr.Wrap(err, "failed to read mastery")
	}
	return row.Mastery, nil
}

// RecordCast implements Service
func (s *service) RecordCast(ctx context.Context, casterID, spellID string) error {
	row, err := s.spellbook.Get(ctx, casterID, spellID)
	if err != nil {
		return apperr.Wrap(err, "failed to load spellbook row for cast recording")
	}

	row.RecordCast(time.Now().UTC())
	if err := s.spellbook.Update(ctx, row); err != nil {
		return apperr.Wrap(err, "failed to persist cast recording")
	}
	return nil
}

// IncreaseMasteryOnCast implements Service. Gains: +2 below mastery 50,
// +1 from 50 to 79, a coin flip for +1 at 80 and above.
func (s *service) IncreaseMasteryOnCast(ctx context.Context, casterID, spellID string, succeeded bool) error {
	if !succeeded {
		return nil
	}

	row, err := s.spellbook.Get(ctx, casterID, spellID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return apperr.Wrap(err, "failed to load spellbook row for mastery gain")
	}

	if row.Mastery >= player.MaxMastery {
		return nil
	}

	gain := 0
	switch {
	case row.Mastery < 50:
		gain = 2
	case row.Mastery < 80:
		gain = 1
	default:
		roll, rollErr := s.diceRoller.Percent()
		if rollErr != nil {
			return apperr.Wrap(rollErr, "failed to roll for mastery gain")
		}
		if roll <= 50 {
			gain = 1
		}
	}

	if gain == 0 {
		return nil
	}

	row.AddMastery(gain)
	if err := s.spellbook.Update(ctx, row); err != nil {
		return apperr.Wrap(err, "failed to persist mastery gain")
	}
	return nil
}

// KnownSpells implements Service
func (s *service) KnownSpells(ctx context.Context, casterID string) ([]*KnownSpell, error) {
	rows, err := s.spellbook.ListByPlayer(ctx, casterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list spellbook")
	}

	known := make([]*KnownSpell, 0, len(rows))
	for _, row := range rows {
		sp, ok := s.catalog.GetByID(row.SpellID)
		if !ok {
			// Catalog content changed under a persisted row; surface the row
			// anyway so it is never silently lost
			sp = &spell.Spell{ID: row.SpellID, Name: row.SpellID}
		}
		known = append(known, &KnownSpell{Row: row, Spell: sp})
	}
	return known, nil
}
