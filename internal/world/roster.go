// Package world is a minimal in-memory stand-in for the wider game world:
// who is in which room, which NPCs can be targeted, and which combat
// sessions are running. The full world model lives outside this engine.
package world

import (
	"context"
	"strings"
	"sync"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/combat"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
)

// NPC is a non-player creature that spells can target
type NPC struct {
	ID     string
	Name   string
	RoomID string
	Health int
}

// Roster tracks NPCs and combat sessions and resolves target names against
// both NPCs and players sharing the caster's room.
type Roster struct {
	mu       sync.RWMutex
	players  players.Repository
	npcs     map[string]*NPC
	sessions map[string]*combat.Session // keyed by participant id
}

// NewRoster creates an empty world roster
func NewRoster(playerRepo players.Repository) *Roster {
	if playerRepo == nil {
		panic("player repository is required")
	}
	return &Roster{
		players:  playerRepo,
		npcs:     make(map[string]*NPC),
		sessions: make(map[string]*combat.Session),
	}
}

// AddNPC places an NPC in the world
func (r *Roster) AddNPC(npc *NPC) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.npcs[npc.ID] = npc
}

// GetNPC returns an NPC by id
func (r *Roster) GetNPC(id string) (*NPC, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	npc, ok := r.npcs[id]
	return npc, ok
}

// StartCombat registers a combat session for all its participants
func (r *Roster) StartCombat(session *combat.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range session.Participants {
		r.sessions[p.ID] = session
	}
}

// EndCombat removes the session from every participant
func (r *Roster) EndCombat(session *combat.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range session.Participants {
		delete(r.sessions, p.ID)
	}
}

// ActiveSessionFor implements targeting.CombatLookup
func (r *Roster) ActiveSessionFor(ctx context.Context, casterID string) (*combat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[casterID], nil
}

// Resolve implements targeting.NameResolver. NPCs in the caster's room are
// checked first, then players by name.
func (r *Roster) Resolve(ctx context.Context, caster *player.Player, name string) (*targeting.Match, error) {
	lowered := strings.ToLower(name)

	r.mu.RLock()
	for _, npc := range r.npcs {
		if npc.RoomID != caster.RoomID {
			continue
		}
		if strings.Contains(strings.ToLower(npc.Name), lowered) {
			match := &targeting.Match{
				ID:     npc.ID,
				Name:   npc.Name,
				Kind:   targeting.MatchNPC,
				RoomID: npc.RoomID,
			}
			r.mu.RUnlock()
			return match, nil
		}
	}
	r.mu.RUnlock()

	p, err := r.players.GetByName(ctx, name)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if p.RoomID != caster.RoomID {
		return nil, nil
	}
	return &targeting.Match{
		ID:     p.ID,
		Name:   p.Name,
		Kind:   targeting.MatchPlayer,
		RoomID: p.RoomID,
	}, nil
}

// ApplyDamage implements effects.DamageSink. NPC targets are resolved
// locally; anything else is treated as a player.
func (r *Roster) ApplyDamage(ctx context.Context, targetID string, amount int, damageType string) error {
	r.mu.Lock()
	if npc, ok := r.npcs[targetID]; ok {
		npc.Health -= amount
		if npc.Health <= 0 {
			delete(r.npcs, targetID)
		}
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	p, err := r.players.Get(ctx, targetID)
	if err != nil {
		return err
	}
	health := p.GetStat(player.StatHealth) - amount
	if health < 0 {
		health = 0
	}
	p.SetStat(player.StatHealth, health)
	return r.players.Save(ctx, p)
}

// Heal implements effects.DamageSink for NPC targets
func (r *Roster) Heal(ctx context.Context, targetID string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	npc, ok := r.npcs[targetID]
	if !ok {
		return apperr.NotFoundf("no creature with id %s", targetID)
	}
	npc.Health += amount
	return nil
}
