package player

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of the player so repository callers can mutate
// freely without aliasing stored state
func (p *Player) Clone() *Player {
	clone := *p
	if p.Stats != nil {
		clone.Stats = maps.Clone(p.Stats)
	}
	clone.Inventory = slices.Clone(p.Inventory)
	if p.StatusEffects != nil {
		clone.StatusEffects = make([]ActiveStatus, len(p.StatusEffects))
		for i, effect := range p.StatusEffects {
			effect.StatMods = maps.Clone(effect.StatMods)
			clone.StatusEffects[i] = effect
		}
	}
	return &clone
}
